package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"yamdb/internal/errors"
	"yamdb/internal/model"
)

func TestWriteCatalog(t *testing.T) {
	tests := []struct {
		name          string
		caller        *model.User
		expectedError error
	}{
		{name: "anonymous", caller: nil, expectedError: errors.ErrAuthRequired},
		{name: "regular user", caller: &model.User{ID: 1, Role: model.RoleUser}, expectedError: errors.ErrForbidden},
		{name: "moderator", caller: &model.User{ID: 2, Role: model.RoleModerator}, expectedError: errors.ErrForbidden},
		{name: "admin", caller: &model.User{ID: 3, Role: model.RoleAdmin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WriteCatalog(tt.caller)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestModifyAuthored(t *testing.T) {
	const authorID = 7

	tests := []struct {
		name          string
		caller        *model.User
		expectedError error
	}{
		{name: "anonymous", caller: nil, expectedError: errors.ErrAuthRequired},
		{name: "author", caller: &model.User{ID: authorID, Role: model.RoleUser}},
		{name: "unrelated user", caller: &model.User{ID: 8, Role: model.RoleUser}, expectedError: errors.ErrForbidden},
		{name: "moderator", caller: &model.User{ID: 9, Role: model.RoleModerator}},
		{name: "unrelated admin", caller: &model.User{ID: 10, Role: model.RoleAdmin}, expectedError: errors.ErrForbidden},
		{name: "admin editing their own", caller: &model.User{ID: authorID, Role: model.RoleAdmin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ModifyAuthored(tt.caller, authorID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestManageUsers(t *testing.T) {
	tests := []struct {
		name          string
		caller        *model.User
		expectedError error
	}{
		{name: "anonymous", caller: nil, expectedError: errors.ErrAuthRequired},
		{name: "regular user", caller: &model.User{ID: 1, Role: model.RoleUser}, expectedError: errors.ErrForbidden},
		{name: "moderator", caller: &model.User{ID: 2, Role: model.RoleModerator}, expectedError: errors.ErrForbidden},
		{name: "admin", caller: &model.User{ID: 3, Role: model.RoleAdmin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ManageUsers(tt.caller)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

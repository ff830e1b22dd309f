package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleModerator.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}

func TestUserTiers(t *testing.T) {
	admin := User{Role: RoleAdmin}
	moderator := User{Role: RoleModerator}
	regular := User{Role: RoleUser}

	assert.True(t, admin.IsAdmin())
	assert.False(t, moderator.IsAdmin())
	assert.True(t, moderator.IsModerator())
	assert.False(t, regular.IsModerator())
	assert.False(t, regular.IsAdmin())
}

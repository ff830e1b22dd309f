package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"yamdb/internal/auth"
	"yamdb/internal/errors"
	"yamdb/internal/model"
)

func TestAuthService_RequestToken(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		setupMock func(*MockUserRepository, *MockCodeStore, *MockMailer)
		wantErr   bool
	}{
		{
			name:  "new signup creates user and mails a code",
			email: "alice@example.com",
			setupMock: func(mRepo *MockUserRepository, mCode *MockCodeStore, mMail *MockMailer) {
				mRepo.On("GetOrCreateByEmail", mock.Anything, "alice@example.com", "alice").
					Return(&model.User{ID: 7, Email: "alice@example.com", Username: "alice", Role: model.RoleUser}, nil)
				mCode.On("Save", mock.Anything, uint(7), mock.AnythingOfType("string")).Return(nil)
				mMail.On("Send", "alice@example.com", "CONFIRM", mock.AnythingOfType("string")).Return(nil)
			},
		},
		{
			name:  "repeat request reuses the existing user",
			email: "alice@example.com",
			setupMock: func(mRepo *MockUserRepository, mCode *MockCodeStore, mMail *MockMailer) {
				// The repository upsert returns the same row; no second user
				// is ever created.
				mRepo.On("GetOrCreateByEmail", mock.Anything, "alice@example.com", "alice").
					Return(&model.User{ID: 7, Email: "alice@example.com", Username: "alice", Role: model.RoleUser}, nil)
				mCode.On("Save", mock.Anything, uint(7), mock.AnythingOfType("string")).Return(nil)
				mMail.On("Send", "alice@example.com", "CONFIRM", mock.AnythingOfType("string")).Return(nil)
			},
		},
		{
			name:  "mail failure is not surfaced",
			email: "bob@example.com",
			setupMock: func(mRepo *MockUserRepository, mCode *MockCodeStore, mMail *MockMailer) {
				mRepo.On("GetOrCreateByEmail", mock.Anything, "bob@example.com", "bob").
					Return(&model.User{ID: 9, Email: "bob@example.com", Username: "bob", Role: model.RoleUser}, nil)
				mCode.On("Save", mock.Anything, uint(9), mock.AnythingOfType("string")).Return(nil)
				mMail.On("Send", "bob@example.com", "CONFIRM", mock.AnythingOfType("string")).
					Return(assert.AnError)
			},
		},
		{
			name:  "code store failure is surfaced",
			email: "carol@example.com",
			setupMock: func(mRepo *MockUserRepository, mCode *MockCodeStore, mMail *MockMailer) {
				mRepo.On("GetOrCreateByEmail", mock.Anything, "carol@example.com", "carol").
					Return(&model.User{ID: 3, Email: "carol@example.com", Username: "carol", Role: model.RoleUser}, nil)
				mCode.On("Save", mock.Anything, uint(3), mock.AnythingOfType("string")).Return(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockCode := new(MockCodeStore)
			mockMail := new(MockMailer)
			tt.setupMock(mockRepo, mockCode, mockMail)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, mockCode, mockMail)

			err := service.RequestToken(context.Background(), tt.email)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
			mockCode.AssertExpectations(t)
			mockMail.AssertExpectations(t)
		})
	}
}

func TestAuthService_RequestTokenUsernameCollision(t *testing.T) {
	// bob@y.com signs up after bob@x.com already owns the username "bob".
	// The upsert reports the collision and the retry carries a suffixed
	// username, so the signup still succeeds.
	mockRepo := new(MockUserRepository)
	mockCode := new(MockCodeStore)
	mockMail := new(MockMailer)

	mockRepo.On("GetOrCreateByEmail", mock.Anything, "bob@y.com", "bob").
		Return(nil, errors.ErrUserExists).Once()
	mockRepo.On("GetOrCreateByEmail", mock.Anything, "bob@y.com", mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "bob-") && name != "bob-"
	})).Return(&model.User{ID: 12, Email: "bob@y.com", Username: "bob-1a2b3c4d", Role: model.RoleUser}, nil).Once()
	mockCode.On("Save", mock.Anything, uint(12), mock.AnythingOfType("string")).Return(nil)
	mockMail.On("Send", "bob@y.com", "CONFIRM", mock.AnythingOfType("string")).Return(nil)

	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), mockCode, mockMail)
	err := service.RequestToken(context.Background(), "bob@y.com")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockCode.AssertExpectations(t)
	mockMail.AssertExpectations(t)
}

func TestAuthService_ExchangeToken(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		confirmKey    string
		setupMock     func(*MockUserRepository, *MockCodeStore)
		expectedError error
	}{
		{
			name:       "valid code yields a token",
			email:      "alice@example.com",
			confirmKey: "good-code",
			setupMock: func(mRepo *MockUserRepository, mCode *MockCodeStore) {
				mRepo.On("FindByEmail", mock.Anything, "alice@example.com").
					Return(&model.User{ID: 7, Email: "alice@example.com"}, nil)
				mCode.On("Verify", mock.Anything, uint(7), "good-code").Return(true, nil)
			},
		},
		{
			name:       "unknown email",
			email:      "nobody@example.com",
			confirmKey: "whatever",
			setupMock: func(mRepo *MockUserRepository, mCode *MockCodeStore) {
				mRepo.On("FindByEmail", mock.Anything, "nobody@example.com").
					Return(nil, errors.ErrUserNotFound)
			},
			expectedError: errors.ErrUserNotFound,
		},
		{
			name:       "wrong code is rejected generically",
			email:      "alice@example.com",
			confirmKey: "bad-code",
			setupMock: func(mRepo *MockUserRepository, mCode *MockCodeStore) {
				mRepo.On("FindByEmail", mock.Anything, "alice@example.com").
					Return(&model.User{ID: 7, Email: "alice@example.com"}, nil)
				mCode.On("Verify", mock.Anything, uint(7), "bad-code").Return(false, nil)
			},
			expectedError: errors.ErrInvalidConfirmKey,
		},
		{
			name:       "expired code is rejected identically to a wrong one",
			email:      "alice@example.com",
			confirmKey: "stale-code",
			setupMock: func(mRepo *MockUserRepository, mCode *MockCodeStore) {
				mRepo.On("FindByEmail", mock.Anything, "alice@example.com").
					Return(&model.User{ID: 7, Email: "alice@example.com"}, nil)
				// The store cannot tell expired from absent; both are a miss.
				mCode.On("Verify", mock.Anything, uint(7), "stale-code").Return(false, nil)
			},
			expectedError: errors.ErrInvalidConfirmKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockCode := new(MockCodeStore)
			tt.setupMock(mockRepo, mockCode)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, mockCode, new(MockMailer))

			token, err := service.ExchangeToken(context.Background(), tt.email, tt.confirmKey)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)

				claims, err := jwtService.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, uint(7), claims.UserID)
			}
			mockRepo.AssertExpectations(t)
			mockCode.AssertExpectations(t)
		})
	}
}

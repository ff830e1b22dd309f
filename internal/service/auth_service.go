package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"yamdb/internal/auth"
	"yamdb/internal/errors"
	"yamdb/internal/mailer"
	"yamdb/internal/repository"
)

// AuthService implements the passwordless signup flow: an emailed
// confirmation code exchanged for a signed access token.
type AuthService interface {
	RequestToken(ctx context.Context, email string) error
	ExchangeToken(ctx context.Context, email, confirmKey string) (string, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	codeStore  auth.CodeStoreInterface
	mailer     mailer.Mailer
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, codeStore auth.CodeStoreInterface, m mailer.Mailer) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		codeStore:  codeStore,
		mailer:     m,
	}
}

// RequestToken gets or creates the user for email, issues a fresh
// single-use confirmation code and mails it. Calling it again for the
// same address reuses the existing user row and replaces the code.
// Mail delivery failure is logged but not surfaced to the caller.
func (s *authService) RequestToken(ctx context.Context, email string) error {
	username := strings.SplitN(email, "@", 2)[0]

	user, err := s.userRepo.GetOrCreateByEmail(ctx, email, username)
	if stderrors.Is(err, errors.ErrUserExists) {
		// The local part is already taken by another account; retry with
		// a suffixed username. Admins can rename it afterwards.
		username = fmt.Sprintf("%s-%s", username, uuid.New().String()[:8])
		user, err = s.userRepo.GetOrCreateByEmail(ctx, email, username)
	}
	if err != nil {
		return fmt.Errorf("get or create user: %w", err)
	}

	code := uuid.New().String()
	if err := s.codeStore.Save(ctx, user.ID, code); err != nil {
		return fmt.Errorf("save confirmation code: %w", err)
	}

	body := fmt.Sprintf("Your confirmation key is %s", code)
	if err := s.mailer.Send(user.Email, "CONFIRM", body); err != nil {
		log.Printf("send confirmation mail to %s: %v", user.Email, err)
	}
	return nil
}

// ExchangeToken validates a confirmation code and returns a signed access
// token. Every rejection reason collapses into ErrInvalidConfirmKey so the
// response does not reveal whether the code was wrong or merely expired.
func (s *authService) ExchangeToken(ctx context.Context, email, confirmKey string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	ok, err := s.codeStore.Verify(ctx, user.ID, confirmKey)
	if err != nil {
		return "", fmt.Errorf("verify confirmation code: %w", err)
	}
	if !ok {
		return "", errors.ErrInvalidConfirmKey
	}

	token, err := s.jwtService.GenerateAccessToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return token, nil
}

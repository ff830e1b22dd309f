package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const (
	confirmCodeKeyPrefix = "confirm_code:"
	// ConfirmCodeTTL bounds how long an issued confirmation code stays valid.
	ConfirmCodeTTL = 15 * time.Minute

	bcryptCost = 10
)

// CodeStoreInterface defines the interface for confirmation code storage.
type CodeStoreInterface interface {
	Save(ctx context.Context, userID uint, code string) error
	Verify(ctx context.Context, userID uint, code string) (bool, error)
}

// CodeStore keeps issued confirmation codes in Redis, keyed by user id.
// Codes are stored as bcrypt hashes with a TTL and removed on first
// successful verification, so each code is single-use and time-bound.
type CodeStore struct {
	client *redis.Client
}

// Ensure CodeStore implements CodeStoreInterface
var _ CodeStoreInterface = (*CodeStore)(nil)

// NewCodeStore creates a new confirmation code store.
func NewCodeStore(client *redis.Client) *CodeStore {
	return &CodeStore{client: client}
}

func codeKey(userID uint) string {
	return fmt.Sprintf("%s%d", confirmCodeKeyPrefix, userID)
}

// Save stores the code hash for the user, replacing any outstanding code.
func (s *CodeStore) Save(ctx context.Context, userID uint, code string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash confirmation code: %w", err)
	}
	if err := s.client.Set(ctx, codeKey(userID), hash, ConfirmCodeTTL).Err(); err != nil {
		return fmt.Errorf("store confirmation code: %w", err)
	}
	return nil
}

// Verify checks code against the stored hash. A match consumes the code.
// Missing, expired and mismatched codes are all reported the same way.
func (s *CodeStore) Verify(ctx context.Context, userID uint, code string) (bool, error) {
	key := codeKey(userID)
	hash, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load confirmation code: %w", err)
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(code)) != nil {
		return false, nil
	}
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return false, fmt.Errorf("consume confirmation code: %w", err)
	}
	return true, nil
}

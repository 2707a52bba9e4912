package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mrlokans/bookmarks/internal/apperrors"
)

const (
	MinPasswordLength = 12
	// bcrypt ignores everything past 72 bytes
	MaxPasswordBytes = 72
)

var (
	ErrInvalidPassword  = errors.New("invalid password")
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrValidation, MinPasswordLength)
	ErrPasswordTooLong  = fmt.Errorf("%w: password exceeds maximum length of %d bytes", apperrors.ErrValidation, MaxPasswordBytes)
)

// PasswordHasher hashes user passwords at a fixed bcrypt cost.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher clamps cost into bcrypt's accepted range; zero selects
// bcrypt.DefaultCost.
func NewPasswordHasher(cost int) PasswordHasher {
	switch {
	case cost == 0:
		cost = bcrypt.DefaultCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return PasswordHasher{cost: cost}
}

// Hash rejects passwords outside the accepted length with an
// apperrors.ErrValidation error.
func (h PasswordHasher) Hash(password string) (string, error) {
	if len([]rune(password)) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports ErrInvalidPassword when password does not match hash.
func (h PasswordHasher) Verify(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidPassword
	}
	return err
}

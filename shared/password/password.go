// Package password hashes staff account passwords with bcrypt.
package password

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	Cost = bcrypt.DefaultCost

	// MinLength counts characters, MaxLength counts bytes (bcrypt's limit).
	MinLength = 8
	MaxLength = 72
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrTooShort        = fmt.Errorf("password must be at least %d characters", MinLength)
	ErrTooLong         = fmt.Errorf("password must not exceed %d bytes", MaxLength)
)

// Check applies the account password policy without hashing.
func Check(password string) error {
	if utf8.RuneCountInString(password) < MinLength {
		return ErrTooShort
	}

	if len(password) > MaxLength {
		return ErrTooLong
	}

	return nil
}

func Hash(password string) (string, error) {
	if err := Check(password); err != nil {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Verify returns ErrInvalidPassword for any mismatch so callers cannot tell
// an empty input from a wrong one.
func Verify(password, hash string) error {
	if password == "" || hash == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrInvalidPassword
	default:
		return fmt.Errorf("failed to verify password: %w", err)
	}
}

// Package secrets generates operator tokens and keeps only their bcrypt
// hashes in configuration.
package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptySecret   = errors.New("secret cannot be empty")
	ErrSecretTooLong = errors.New("secret is too long")
	ErrInvalidSecret = errors.New("invalid secret")
)

// Generate creates a cryptographically secure random secret, base64url encoded.
func Generate() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate secret: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Hash creates a bcrypt hash of secret.
func Hash(secret string) (string, error) {
	return HashWithCost(secret, bcrypt.DefaultCost)
}

// HashWithCost is Hash with an explicit bcrypt cost.
func HashWithCost(secret string, cost int) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrSecretTooLong
		}
		return "", fmt.Errorf("could not hash secret: %w", err)
	}
	return string(hashed), nil
}

// Verify checks a plaintext secret against a bcrypt hash.
func Verify(secret, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidSecret
		}
		return fmt.Errorf("could not verify secret: %w", err)
	}
	return nil
}

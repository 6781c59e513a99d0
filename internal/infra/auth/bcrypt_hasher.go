// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"rewards/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the SecretHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// Merchant redeem codes are hashed with it before they are stored.
func NewBcryptHasher() service.SecretHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash generates a salted hash from a plaintext secret using bcrypt.
func (h *bcryptHasher) Hash(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	return string(bytes), err
}

// Check compares a plaintext secret with a bcrypt hash.
func (h *bcryptHasher) Check(secret, hash string) bool {
	if hash == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	return err == nil
}

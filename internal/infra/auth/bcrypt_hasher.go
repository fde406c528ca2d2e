// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"classteacher/config"
	"classteacher/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int

	// dummyHash is a valid bcrypt hash of a random throwaway value. It
	// backs DummyCheck, so that login attempts against unknown identifiers
	// still pay one full hash comparison.
	dummyHash []byte
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	dummyHash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), cost)
	if err != nil {
		return nil, err
	}

	return &bcryptHasher{cost: cost, dummyHash: dummyHash}, nil
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// DummyCheck runs one comparison against the throwaway hash. The random
// value was discarded at construction, so this can never succeed; its only
// purpose is to keep the not-found path as slow as the wrong-password path.
func (h *bcryptHasher) DummyCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))
}

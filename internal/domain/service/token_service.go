package service

import (
	"errors"

	"github.com/google/uuid"
)

// Token verification failures. Verify reports exactly one of these; anything
// else is an internal signing error.
var (
	// ErrInvalidToken is returned for a bad signature, wrong algorithm or
	// malformed payload.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned when the token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")
)

// TokenService issues and verifies the stateless bearer tokens that carry a
// user identity. Verification is purely cryptographic; whether the account
// behind the token is still usable is the caller's concern.
type TokenService interface {
	// Issue creates a signed token encoding the user ID and an expiry.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks the token's signature and expiry and returns the
	// encoded user ID. Fails with ErrInvalidToken or ErrTokenExpired.
	Verify(token string) (uuid.UUID, error)
}

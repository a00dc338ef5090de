package service

import (
	"github.com/golang-jwt/jwt/v5"

	"mentorhub/internal/domain/entity"
)

// Claims defines the claim set carried by every issued bearer token.
// The registered claims hold issuer, audience, subject (the user's email),
// the validity window and a unique token ID; the custom claims duplicate the
// identity fields the HTTP layer needs without a store round trip.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// Tokens are stateless: there is no server-side revocation list, so logout is
// a client-side token-discard concern.
type TokenService interface {
	// Issue creates a signed token for the given identity. The subject is
	// the user's email; expiry is issued-at plus the configured TTL.
	Issue(email, name string, role entity.Role) (string, error)

	// Validate checks the signature, validity window, issuer and audience of
	// a token string. Failures are reported as the structured token errors
	// from the domain errors package, never as a raw parser error.
	Validate(tokenString string) (*Claims, error)
}

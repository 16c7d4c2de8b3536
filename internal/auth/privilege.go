package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the slice of the uPark token payload this layer cares
// about. The server signs and verifies the token; the client only reads it
// to decide scoping and column visibility, so parsing is unverified here.
type SessionClaims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	Admin  bool   `json:"admin"`
	jwt.RegisteredClaims
}

// Identity is the caller as seen by the view layer.
type Identity struct {
	UserID int
	Email  string
	Admin  bool
}

// IdentityFromToken extracts the caller's identity from the session token.
func IdentityFromToken(token string) (Identity, error) {
	const op = "auth.IdentityFromToken"

	var claims SessionClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return Identity{}, fmt.Errorf("%s: %w", op, err)
	}

	return Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
		Admin:  claims.Admin,
	}, nil
}

package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims SessionClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func TestIdentityFromToken(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		claims SessionClaims
		want   Identity
	}{
		{
			name:   "regular user",
			claims: SessionClaims{UserID: 7, Email: "user@example.com"},
			want:   Identity{UserID: 7, Email: "user@example.com"},
		},
		{
			name:   "admin",
			claims: SessionClaims{UserID: 1, Email: "admin@example.com", Admin: true},
			want:   Identity{UserID: 1, Email: "admin@example.com", Admin: true},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := IdentityFromToken(signedToken(t, tc.claims))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIdentityFromTokenGarbage(t *testing.T) {
	t.Parallel()

	_, err := IdentityFromToken("not-a-jwt")
	require.Error(t, err)
}

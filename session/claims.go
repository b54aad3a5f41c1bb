package session

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

// Claims is what the backend encodes into the bearer token.
type Claims struct {
	jwt.StandardClaims
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
}

// Peek decodes the token's claims without verifying the signature: only the
// backend holds the signing key, and it re-checks every request anyway. The
// portal uses the claims to gate screens and to notice expiry before making
// a doomed call.
func Peek(token string) (Claims, error) {
	claims := new(Claims)
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return Claims{}, errors.Wrap(err, "parsing token")
	}
	return *claims, nil
}

func (c Claims) Expired(now time.Time) bool {
	return c.ExpiresAt != 0 && now.Unix() >= c.ExpiresAt
}

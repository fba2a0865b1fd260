package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired reports whether token is a JWT whose exp claim is at or before
// now. Opaque or malformed tokens are left for the server to judge.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(now)
}

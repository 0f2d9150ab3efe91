package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// expirySkew makes a token count as expired slightly before its "exp" so it
// does not lapse in flight.
const expirySkew = 5 * time.Second

// tokenExpiry reads the "exp" claim without verifying the signature; the
// server remains the authority, the client only uses it to avoid a wasted
// round trip.
func tokenExpiry(token string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// tokenExpired reports whether token carries an "exp" claim that has passed.
// Opaque (non-JWT) tokens never count as expired.
func tokenExpired(token string, now time.Time) bool {
	exp, ok := tokenExpiry(token)
	return ok && !now.Add(expirySkew).Before(exp)
}

package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenExpired(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token func(t *testing.T) string
		want  bool
	}{
		{name: "valid for an hour", token: func(t *testing.T) string { return mintToken(t, now.Add(time.Hour)) }, want: false},
		{name: "expired", token: func(t *testing.T) string { return mintToken(t, now.Add(-time.Minute)) }, want: true},
		{name: "inside skew", token: func(t *testing.T) string { return mintToken(t, now.Add(2*time.Second)) }, want: true},
		{name: "opaque token", token: func(t *testing.T) string { return "opaque-token" }, want: false},
		{name: "jwt without exp", token: func(t *testing.T) string {
			s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"}).SignedString([]byte("k"))
			require.NoError(t, err)
			return s
		}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenExpired(tt.token(t), now))
		})
	}
}

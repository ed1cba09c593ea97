package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 7 * 24 * time.Hour

// Generate signs a bearer token for the authenticated agent.
func Generate(secret string, metadata Metadata, sessionID string) (string, error) {
	now := time.Now()
	claim := &Claim{
		Metadata:  metadata,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "momovender",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			Subject:   fmt.Sprintf("%d", metadata.UserID),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claim).SignedString([]byte(secret))
}

// Verify parses and validates a bearer token, returning its claim.
func Verify(secret, tokenString string) (*Claim, error) {
	claim := &Claim{}
	parsed, err := jwt.ParseWithClaims(tokenString, claim, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claim, nil
}

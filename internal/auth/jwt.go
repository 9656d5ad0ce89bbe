package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/brandscope/api/pkg/errors"
	"github.com/brandscope/api/pkg/middleware"
)

// Verifier validates access tokens issued by the external identity provider.
// Identities are managed upstream; this service only verifies the signature
// and extracts the identity ID.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a verifier for HS256 tokens signed with the identity
// provider's shared secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// idpClaims mirrors the token payload the identity provider issues. The
// subject is the identity ID.
type idpClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Validate parses and verifies a token, returning the identity claims.
func (v *Verifier) Validate(tokenString string) (*middleware.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &idpClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, apperrors.Unauthorized("invalid or expired token")
	}

	claims, ok := token.Claims.(*idpClaims)
	if !ok || !token.Valid {
		return nil, apperrors.Unauthorized("invalid token claims")
	}
	if claims.Subject == "" {
		return nil, apperrors.Unauthorized("token missing subject")
	}

	return &middleware.Claims{
		IdentityID: claims.Subject,
		Email:      claims.Email,
	}, nil
}

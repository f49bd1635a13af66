// README: Bearer-token verification against the external identity provider.
package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// Token is the verified identity attached to a request.
type Token struct {
	UserID string
	Email  string
	Claims map[string]interface{}
}

// TokenVerifier abstracts the identity provider so handlers and tests can
// stub verification.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, raw string) (*Token, error)
}

var ErrInvalidToken = errors.New("invalid token")

// JWTVerifier validates HS256 access tokens issued by the identity provider
// (Supabase-style: subject is the user id, email claim optional).
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) VerifyToken(_ context.Context, raw string) (*Token, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	return &Token{UserID: sub, Email: email, Claims: claims}, nil
}

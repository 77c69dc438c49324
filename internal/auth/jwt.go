package auth

import (
	"context"
	"fmt"

	"github.com/alex38x15-dot/nebula-draw-magic/internal/log"
	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/do"
)

type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(i *do.Injector) (Verifier, error) {
	secret := do.MustInvokeNamed[string](i, "jwt_secret")
	return &JWTVerifier{secret: []byte(secret)}, nil
}

func (v *JWTVerifier) Verify(ctx context.Context, tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return v.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parsing token: %w", err)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("token has no subject")
	}

	log.FromContextOrDiscard(ctx).Debug("verified bearer token", "sub", sub)
	return sub, nil
}

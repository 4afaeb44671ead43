package jwtmw

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every verification failure: missing subject,
// malformed token, bad signature or expiry. Callers get no further detail.
var ErrInvalidToken = errors.New("invalid token")

// Verifier defines the interface for session token verification.
type Verifier interface {
	// VerifyToken validates a signed token and returns the user id it carries.
	VerifyToken(tokenString string) (uint, error)
}

// verifier implements the Verifier interface.
type verifier struct {
	secret []byte
}

// NewVerifier creates a new token verifier with the provided secret.
func NewVerifier(secret string) Verifier {
	return &verifier{secret: []byte(secret)}
}

// VerifyToken parses and validates a token, extracting the user id from the subject claim.
// すべての失敗はErrInvalidTokenに集約され、呼び出し側からは区別できません。
func (v *verifier) VerifyToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		// 署名アルゴリズムをチェック（HMACのみ許可）
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return 0, ErrInvalidToken
	}

	return uint(sub), nil
}

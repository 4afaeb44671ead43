package jwtmw

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key"

// createTokenWithSecret はテスト用に指定されたシークレットとユーザーIDで署名済みJWTトークンを生成します。
func createTokenWithSecret(secret string, userID uint, expiration time.Duration) string {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(expiration).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString([]byte(secret))
	return signed
}

// TestVerifyToken_Valid は発行直後のトークンからユーザーIDが取り出せることを検証します。
func TestVerifyToken_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		userID uint
	}{
		{"user id 1", 1},
		{"user id 42", 42},
		{"user id 999", 999},
	}

	v := NewVerifier(testSecret)

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			token := createTokenWithSecret(testSecret, tt.userID, time.Hour)

			got, err := v.VerifyToken(token)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.userID {
				t.Errorf("expected userID %d, got %d", tt.userID, got)
			}
		})
	}
}

// TestVerifyToken_Invalid は不正なトークン（改ざん・期限切れ等）がすべてErrInvalidTokenに集約されることを検証します。
func TestVerifyToken_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"malformed token", "not.a.valid.token"},
		{"random string", "randomstring"},
		{"wrong secret", createTokenWithSecret("wrong-secret", 1, time.Hour)},
		{"expired token", createTokenWithSecret(testSecret, 1, -time.Hour)},
	}

	v := NewVerifier(testSecret)

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := v.VerifyToken(tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

// TestVerifyToken_ExpiredAfterLifetime は有効期限を過ぎたトークンが拒否されることを検証します。
func TestVerifyToken_ExpiredAfterLifetime(t *testing.T) {
	t.Parallel()

	// 1時間の有効期限が既に経過したトークンを模す
	token := createTokenWithSecret(testSecret, 7, -time.Minute)

	v := NewVerifier(testSecret)
	_, err := v.VerifyToken(token)

	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

// TestVerifyToken_NoneAlgorithm はnoneアルゴリズム（未署名）のトークンが拒否されることを検証します。
func TestVerifyToken_NoneAlgorithm(t *testing.T) {
	t.Parallel()

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": float64(1),
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})
	tokenStr, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType)

	v := NewVerifier(testSecret)
	_, err := v.VerifyToken(tokenStr)

	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

// TestVerifyToken_MissingSubject はsubクレームのないトークンが拒否されることを検証します。
func TestVerifyToken_MissingSubject(t *testing.T) {
	t.Parallel()

	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString([]byte(testSecret))

	v := NewVerifier(testSecret)
	_, err := v.VerifyToken(signed)

	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

// TestGenerateAndVerify_RoundTrip は発行と検証の往復で同じユーザーIDが得られることを検証します。
func TestGenerateAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(testSecret, time.Hour)
	v := NewVerifier(testSecret)

	signed, err := gen.GenerateToken(123)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := v.VerifyToken(signed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 123 {
		t.Errorf("expected userID 123, got %d", got)
	}
}

// Package session はトークン検証とリクエストへのユーザー添付を行うミドルウェアを提供します。
package session

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/feature/users/domain/entity"
)

// contextUserKey はginコンテキストに現在のユーザーを保存するキーです。
const contextUserKey = "currentUser"

// TokenVerifier はセッショントークンの検証を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダーではなくコンシューマーが定義します。
type TokenVerifier interface {
	// VerifyToken はトークン文字列を検証し、トークン内のユーザーIDを返します。
	VerifyToken(tokenString string) (uint, error)
}

// UserFinder はトークンに対応するユーザーの取得を抽象化します。
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// SessionRequired は保護されたルート用のGinミドルウェアを返します。
// Authorizationヘッダーの値全体をそのままトークンとして検証します。
// "Bearer "プレフィックスは想定しておらず、付いていると検証に失敗します。
// 検証失敗・ユーザー不在のいずれの場合もステータス200で
// {"error": "Unauthorized"} を返して処理を打ち切ります（既存APIと同じ挙動）。
func SessionRequired(verifier TokenVerifier, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusOK, gin.H{"error": "Unauthorized"})
			return
		}

		userID, err := verifier.VerifyToken(token)
		if err != nil {
			slog.Warn("token verification failed", "error", err, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusOK, gin.H{"error": "Unauthorized"})
			return
		}

		// トークンが有効でも、本人のレコードが消えていればセッションは無効です。
		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			slog.Warn("session user lookup failed", "error", err, "user_id", userID)
			c.AbortWithStatusJSON(http.StatusOK, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// CurrentUser はミドルウェアが添付した現在のユーザーを返します。
// SessionRequiredを通過していないコンテキストではnilを返します。
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*entity.User)
	if !ok {
		return nil
	}
	return user
}

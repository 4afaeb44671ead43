package router

import (
	"github.com/gin-gonic/gin"

	bloghandler "blog_backend/internal/feature/blogs/transport/handler"
	userhandler "blog_backend/internal/feature/users/transport/handler"
	"blog_backend/internal/platform/http/handler"
	"blog_backend/internal/platform/session"
)

// NewRouter はアプリケーションの全ルートを組み立てます。
// 公開ルートと、セッションミドルウェアで保護されたルートに分かれます。
func NewRouter(users *userhandler.UserHandler, blogs *bloghandler.BlogHandler,
	verifier session.TokenVerifier, finder session.UserFinder) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/api/health", handler.Health)
	r.GET("/api/public", handler.Public)
	// 新規ユーザー登録
	r.POST("/api/register", users.Register)
	// ログイン（トークン発行）
	r.POST("/api/login", users.Login)
	// ユーザー一覧（全フィールドをそのまま返します）
	r.GET("/api/users", users.List)
	// ブログ一覧（著者の射影付き）
	r.GET("/api/blogs", blogs.ListAll)
	r.GET("/api/blogs/user/:userId", blogs.ListByUser)

	// 認証必須のルート
	// Authorizationヘッダーのトークンそのものを検証します
	auth := r.Group("/api")
	auth.Use(session.SessionRequired(verifier, finder))
	{
		auth.GET("/private", users.Private)
		auth.GET("/users/:id", users.GetByID)
		auth.PUT("/users", users.Update)
		auth.DELETE("/users/:id", users.Delete)
		auth.POST("/blogs", blogs.Create)
		auth.DELETE("/blogs", blogs.DeleteOwn)
		auth.DELETE("/blogs/user/:userId", blogs.DeleteByUser)
	}

	return r
}

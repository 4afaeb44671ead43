// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/feature/users/domain/entity"
	"blog_backend/internal/feature/users/transport/http/dto"
	"blog_backend/internal/feature/users/usecase"
	"blog_backend/internal/platform/session"
)

// UserUsecase はユーザー操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	// Register は新規ユーザーを登録し、セッショントークンを発行します。
	Register(ctx context.Context, firstName, lastName, email, password string) (*entity.User, string, error)
	// Login はメールアドレスでユーザーを特定し、セッショントークンを発行します。
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// GetByID は指定されたIDのユーザーを返します。
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	// List はすべてのユーザーを返します。
	List(ctx context.Context) ([]entity.User, error)
	// Update はユーザーの部分更新を行います。
	Update(ctx context.Context, id uint, in usecase.UpdateInput) (*entity.User, error)
	// Delete はユーザーレコードを削除します。
	Delete(ctx context.Context, id uint) error
}

// BlogCascader はユーザー削除時のブログのカスケード削除を抽象化します。
// blogsフィーチャーへの直接依存を避けるため、ここで最小のインターフェースを定義します。
type BlogCascader interface {
	// DeleteByAuthor は指定された著者のブログをすべて削除し、削除件数を返します。
	DeleteByAuthor(ctx context.Context, authorID uint) (int64, error)
}

// UserHandler はユーザー操作のHTTPリクエストを処理します。
type UserHandler struct {
	users UserUsecase
	blogs BlogCascader
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserHandler(users UserUsecase, blogs BlogCascader) *UserHandler {
	return &UserHandler{users: users, blogs: blogs}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - メール重複時は409を返却
// - その他の失敗時は500を返却
// - 成功時はユーザー・トークン付きで200を返却
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, token, err := h.users.Register(c.Request.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error registering user"})
		return
	}

	slog.Info("user registered", "user_id", user.ID, "email", user.Email)
	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"token":   token,
		"message": "User registered successfully!",
	})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - ユーザー不在時は404を返却
// - その他の失敗時は500を返却
// - 成功時はユーザー・トークン付きで200を返却
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, token, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error logging in user"})
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "email", user.Email)
	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"token":   token,
		"message": "User logged in successfully!",
	})
}

// Private は認証済みユーザーの確認用エンドポイントを処理します。
// ミドルウェアが添付したユーザーをそのまま返します。
func (h *UserHandler) Private(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "This is a private route, please log in",
		"user":    session.CurrentUser(c),
	})
}

// List はすべてのユーザーをそのまま返します。
// フィルタもフィールドの絞り込みもありません（既存APIと同じ挙動）。
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		slog.Error("list users failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetByID は指定されたIDのユーザーを返します。
// IDが数値として解釈できない場合もユーザー不在として扱います。
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		slog.Error("get user failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Update は現在のユーザーの部分更新を処理します。
// 対象はトークンから解決されたユーザー自身のみです。
func (h *UserHandler) Update(c *gin.Context) {
	current := session.CurrentUser(c)

	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.users.Update(c.Request.Context(), current.ID, usecase.UpdateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		slog.Error("update user failed", "error", err, "user_id", current.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully!",
		"user":    user,
	})
}

// Delete は指定されたIDのユーザーと、そのユーザーが書いたブログを削除します。
// 削除はユーザー→ブログの2段階で、トランザクションは使いません。
// ブログ側の削除失敗はログに残すだけでレスポンスには影響しません（既存APIと同じ挙動）。
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := h.users.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		slog.Error("delete user failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting user"})
		return
	}

	deleted, err := h.blogs.DeleteByAuthor(c.Request.Context(), uint(id))
	if err != nil {
		// 該当ブログが無い場合もここに来ますが、ユーザー削除自体は成功しています。
		slog.Warn("cascade blog delete skipped", "error", err, "author_id", id)
	} else {
		slog.Info("cascade blog delete", "author_id", id, "count", deleted)
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully!"})
}

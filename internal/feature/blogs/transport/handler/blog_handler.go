// Package handler はblogsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/feature/blogs/domain/entity"
	"blog_backend/internal/feature/blogs/transport/http/dto"
	"blog_backend/internal/feature/blogs/usecase"
	"blog_backend/internal/platform/session"
)

// BlogUsecase はブログ操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type BlogUsecase interface {
	// Create は指定された著者の新しいブログ記事を作成します。
	Create(ctx context.Context, authorID uint, title, content string) (*entity.Blog, error)
	// ListAll はすべてのブログ記事を著者の射影付きで返します。
	ListAll(ctx context.Context) ([]entity.BlogWithAuthor, error)
	// ListByAuthor は指定された著者のブログ記事を射影付きで返します。
	ListByAuthor(ctx context.Context, authorID uint) ([]entity.BlogWithAuthor, error)
	// DeleteByAuthor は指定された著者のブログ記事をすべて削除します。
	DeleteByAuthor(ctx context.Context, authorID uint) (int64, error)
}

// BlogHandler はブログ操作のHTTPリクエストを処理します。
type BlogHandler struct {
	blogs BlogUsecase
}

// NewBlogHandler はBlogHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewBlogHandler(blogs BlogUsecase) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

// Create はブログ投稿APIエンドポイントを処理します。
// 著者はトークンから解決されたユーザーで固定され、ボディでは指定できません。
func (h *BlogHandler) Create(c *gin.Context) {
	var req dto.CreateBlogReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create blog bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	author := session.CurrentUser(c)
	blog, err := h.blogs.Create(c.Request.Context(), author.ID, req.Title, req.Content)
	if err != nil {
		slog.Error("create blog failed", "error", err, "author_id", author.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating blog"})
		return
	}

	slog.Info("blog created", "blog_id", blog.ID, "author_id", author.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Blog created successfully!",
		"blog":    blog,
	})
}

// ListAll はすべてのブログ記事を著者の射影付きで返します。
func (h *BlogHandler) ListAll(c *gin.Context) {
	blogs, err := h.blogs.ListAll(c.Request.Context())
	if err != nil {
		slog.Error("list blogs failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching blogs"})
		return
	}
	c.JSON(http.StatusOK, blogs)
}

// ListByUser は指定された著者のブログ記事を返します。
// 該当ゼロ件は404として報告されます（既存APIと同じ挙動）。
func (h *BlogHandler) ListByUser(c *gin.Context) {
	authorID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No blogs found"})
		return
	}

	blogs, err := h.blogs.ListByAuthor(c.Request.Context(), uint(authorID))
	if err != nil {
		if errors.Is(err, usecase.ErrNoBlogsFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No blogs found"})
			return
		}
		slog.Error("list blogs by user failed", "error", err, "author_id", authorID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching blogs"})
		return
	}

	c.JSON(http.StatusOK, blogs)
}

// DeleteByUser は指定された著者のブログ記事をすべて削除します。
// 所有者の検査はありません。認証済みであれば誰のブログでも削除できます（既存APIと同じ挙動）。
func (h *BlogHandler) DeleteByUser(c *gin.Context) {
	authorID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No blogs found"})
		return
	}

	h.deleteForAuthor(c, uint(authorID))
}

// DeleteOwn は現在のユーザー自身のブログ記事をすべて削除します。
func (h *BlogHandler) DeleteOwn(c *gin.Context) {
	h.deleteForAuthor(c, session.CurrentUser(c).ID)
}

func (h *BlogHandler) deleteForAuthor(c *gin.Context, authorID uint) {
	count, err := h.blogs.DeleteByAuthor(c.Request.Context(), authorID)
	if err != nil {
		if errors.Is(err, usecase.ErrNoBlogsFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No blogs found"})
			return
		}
		slog.Error("delete blogs failed", "error", err, "author_id", authorID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting blogs"})
		return
	}

	slog.Info("blogs deleted", "author_id", authorID, "count", count)
	c.JSON(http.StatusOK, gin.H{"message": "Blogs deleted successfully!"})
}

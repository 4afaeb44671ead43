// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	blogadapters "blog_backend/internal/feature/blogs/adapters"
	"blog_backend/internal/feature/blogs/usecase"
	"blog_backend/internal/platform/cache"
)

// NewBlogRepository creates a BlogRepository implementation.
// If Redis is available, the Postgres repository is wrapped with a caching
// decorator for the list queries. Otherwise, the plain repository is returned.
func NewBlogRepository(rdb *redis.Client, db *gorm.DB) usecase.BlogRepository {
	repo := blogadapters.NewBlogPostgres(db)
	if rdb != nil {
		return cache.NewCachingBlogRepository(rdb, 5*time.Minute, repo, "blogs")
	}
	return repo
}

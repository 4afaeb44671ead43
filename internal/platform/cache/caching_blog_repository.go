// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"blog_backend/internal/feature/blogs/domain/entity"
	"blog_backend/internal/feature/blogs/usecase"
)

// CachingBlogRepository decorates a BlogRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Only the two list queries are cached;
// writes pass through and invalidate the namespace.
type CachingBlogRepository struct {
	inner     usecase.BlogRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingBlogRepository decorates a BlogRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "blogs".
func NewCachingBlogRepository(rdb *redis.Client, ttl time.Duration, inner usecase.BlogRepository, namespace string) *CachingBlogRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "blogs"
	}
	return &CachingBlogRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

var _ usecase.BlogRepository = (*CachingBlogRepository)(nil)

// Create inserts a blog post and invalidates the cached lists.
func (c *CachingBlogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	if err := c.inner.Create(ctx, blog); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// FindAllWithAuthor retrieves all blog posts, checking cache first then
// falling back to the database.
func (c *CachingBlogRepository) FindAllWithAuthor(ctx context.Context) ([]entity.BlogWithAuthor, error) {
	if c.rdb == nil {
		return c.inner.FindAllWithAuthor(ctx)
	}
	return c.findCached(ctx, c.cacheKeyAll(), func() ([]entity.BlogWithAuthor, error) {
		return c.inner.FindAllWithAuthor(ctx)
	})
}

// FindByAuthorWithAuthor retrieves one author's blog posts, checking cache
// first then falling back to the database.
func (c *CachingBlogRepository) FindByAuthorWithAuthor(ctx context.Context, authorID uint) ([]entity.BlogWithAuthor, error) {
	if c.rdb == nil {
		return c.inner.FindByAuthorWithAuthor(ctx, authorID)
	}
	return c.findCached(ctx, c.cacheKeyAuthor(authorID), func() ([]entity.BlogWithAuthor, error) {
		return c.inner.FindByAuthorWithAuthor(ctx, authorID)
	})
}

// DeleteByAuthor deletes an author's blog posts and invalidates the cached lists.
func (c *CachingBlogRepository) DeleteByAuthor(ctx context.Context, authorID uint) (int64, error) {
	count, err := c.inner.DeleteByAuthor(ctx, authorID)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		c.invalidate(ctx)
	}
	return count, nil
}

// findCached implements the read-through pattern for one cache key.
func (c *CachingBlogRepository) findCached(ctx context.Context, key string, load func() ([]entity.BlogWithAuthor, error)) ([]entity.BlogWithAuthor, error) {
	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.BlogWithAuthor
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := load()
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// invalidate drops every cached list in the namespace (best effort).
func (c *CachingBlogRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*")
}

// cacheKeyAll generates the cache key for the full list.
func (c *CachingBlogRepository) cacheKeyAll() string {
	return fmt.Sprintf("%s:all", c.namespace)
}

// cacheKeyAuthor generates the cache key for one author's list.
func (c *CachingBlogRepository) cacheKeyAuthor(authorID uint) string {
	return fmt.Sprintf("%s:author:%d", c.namespace, authorID)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingBlogRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// Package adapters はblogsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"blog_backend/internal/feature/blogs/domain/entity"
	"blog_backend/internal/feature/blogs/usecase"
)

// BlogModel はブログ記事のデータベース表現です。
// ドメインエンティティとは分離し、GORMタグはこちらにのみ付与します。
type BlogModel struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:255;not null"`
	Content   string `gorm:"not null"`
	AuthorID  uint   `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName はGORMが使用するテーブル名を指定します。
func (BlogModel) TableName() string { return "blogs" }

// blogRow は著者結合クエリの1行分のスキャン先です。
type blogRow struct {
	ID        uint
	Title     string
	Content   string
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r blogRow) toEntity() entity.BlogWithAuthor {
	return entity.BlogWithAuthor{
		ID:      r.ID,
		Title:   r.Title,
		Content: r.Content,
		Author: entity.AuthorSummary{
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Email:     r.Email,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// blogPostgres はBlogRepositoryインターフェースのPostgres実装です。
type blogPostgres struct {
	db *gorm.DB
}

// blogPostgresがBlogRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.BlogRepository = (*blogPostgres)(nil)

// NewBlogPostgres は指定されたgorm.DB接続でblogPostgresの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewBlogPostgres(db *gorm.DB) *blogPostgres {
	return &blogPostgres{db: db}
}

// Create はブログ記事をデータベースに追加します。
// タイトルと本文はストア層で必須です。IDとタイムスタンプは渡されたエンティティに書き戻されます。
func (r *blogPostgres) Create(ctx context.Context, blog *entity.Blog) error {
	if blog == nil {
		return fmt.Errorf("blog is nil")
	}
	if blog.Title == "" || blog.Content == "" {
		return fmt.Errorf("blog: missing required field")
	}

	model := BlogModel{
		Title:    blog.Title,
		Content:  blog.Content,
		AuthorID: blog.AuthorID,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}

	blog.ID = model.ID
	blog.CreatedAt = model.CreatedAt
	blog.UpdatedAt = model.UpdatedAt
	return nil
}

// authorJoin はブログと著者の結合クエリの共通部分を組み立てます。
func (r *blogPostgres) authorJoin(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("blogs").
		Select("blogs.id, blogs.title, blogs.content, blogs.created_at, blogs.updated_at, " +
			"users.first_name, users.last_name, users.email").
		Joins("LEFT JOIN users ON users.id = blogs.author_id").
		Order("blogs.id ASC")
}

// FindAllWithAuthor はすべてのブログ記事を著者の射影付きで返します。
func (r *blogPostgres) FindAllWithAuthor(ctx context.Context) ([]entity.BlogWithAuthor, error) {
	var rows []blogRow
	if err := r.authorJoin(ctx).Scan(&rows).Error; err != nil {
		return nil, err
	}

	blogs := make([]entity.BlogWithAuthor, 0, len(rows))
	for _, row := range rows {
		blogs = append(blogs, row.toEntity())
	}
	return blogs, nil
}

// FindByAuthorWithAuthor は指定された著者のブログ記事を射影付きで返します。
// 該当ゼロ件の判定は呼び出し側（usecase）が行います。
func (r *blogPostgres) FindByAuthorWithAuthor(ctx context.Context, authorID uint) ([]entity.BlogWithAuthor, error) {
	var rows []blogRow
	if err := r.authorJoin(ctx).Where("blogs.author_id = ?", authorID).Scan(&rows).Error; err != nil {
		return nil, err
	}

	blogs := make([]entity.BlogWithAuthor, 0, len(rows))
	for _, row := range rows {
		blogs = append(blogs, row.toEntity())
	}
	return blogs, nil
}

// DeleteByAuthor は指定された著者のブログ記事をすべて削除し、削除件数を返します。
func (r *blogPostgres) DeleteByAuthor(ctx context.Context, authorID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("author_id = ?", authorID).Delete(&BlogModel{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

package usecase

import (
	"context"

	"blog_backend/internal/feature/blogs/domain/entity"
)

// BlogRepository はブログ記事の永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type BlogRepository interface {
	// Create は新しいブログ記事を永続化し、IDとタイムスタンプを設定します。
	Create(ctx context.Context, blog *entity.Blog) error

	// FindAllWithAuthor はすべてのブログ記事を著者の射影付きで取得します。
	FindAllWithAuthor(ctx context.Context) ([]entity.BlogWithAuthor, error)

	// FindByAuthorWithAuthor は指定された著者のブログ記事を射影付きで取得します。
	FindByAuthorWithAuthor(ctx context.Context, authorID uint) ([]entity.BlogWithAuthor, error)

	// DeleteByAuthor は指定された著者のブログ記事をすべて削除し、削除件数を返します。
	DeleteByAuthor(ctx context.Context, authorID uint) (int64, error)
}

// blogUsecase はブログ記事管理のビジネスロジックを実装します。
type blogUsecase struct {
	blogs BlogRepository
}

// NewBlogUsecase はblogUsecaseの新しいインスタンスを生成します。
func NewBlogUsecase(blogs BlogRepository) *blogUsecase {
	return &blogUsecase{blogs: blogs}
}

// Create は認証済みユーザーを著者として新しいブログ記事を作成します。
// 著者IDはリクエストボディではなく、解決済みのアイデンティティから渡されます。
func (u *blogUsecase) Create(ctx context.Context, authorID uint, title, content string) (*entity.Blog, error) {
	blog := &entity.Blog{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}
	if err := u.blogs.Create(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// ListAll はすべてのブログ記事を著者の射影付きで返します。
// 記事が1件もなくても空のリストを返します（404にはなりません）。
func (u *blogUsecase) ListAll(ctx context.Context) ([]entity.BlogWithAuthor, error) {
	return u.blogs.FindAllWithAuthor(ctx)
}

// ListByAuthor は指定された著者のブログ記事を射影付きで返します。
// 該当記事がゼロ件の場合、ErrNoBlogsFoundを返します（既存APIと同じ挙動）。
func (u *blogUsecase) ListByAuthor(ctx context.Context, authorID uint) ([]entity.BlogWithAuthor, error) {
	blogs, err := u.blogs.FindByAuthorWithAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if len(blogs) == 0 {
		return nil, ErrNoBlogsFound
	}
	return blogs, nil
}

// DeleteByAuthor は指定された著者のブログ記事をすべて削除します。
// 削除対象がゼロ件の場合、ErrNoBlogsFoundを返します。
func (u *blogUsecase) DeleteByAuthor(ctx context.Context, authorID uint) (int64, error) {
	count, err := u.blogs.DeleteByAuthor(ctx, authorID)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, ErrNoBlogsFound
	}
	return count, nil
}

// Package entity はblogsフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Blog はユーザーが投稿したブログ記事を表します。
// AuthorIDはワイヤー上では "author" として直列化されます。
// UpdatedAtは作成時に一度だけ設定され、その後更新されることはありません。
type Blog struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  uint      `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthorSummary はブログ一覧に結合される著者情報の射影です。
// パスワードハッシュ等は含まれません。
type AuthorSummary struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// BlogWithAuthor は著者の射影を埋め込んだブログ記事です。
// 一覧系エンドポイントのレスポンスに使用します。
type BlogWithAuthor struct {
	ID        uint          `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Author    AuthorSummary `json:"author"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

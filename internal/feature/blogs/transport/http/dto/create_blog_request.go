// Package dto はblogsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreateBlogReq はPOST /api/blogsエンドポイントのリクエストボディを表します。
// 著者はリクエストボディではなくトークンから解決されるため、ここには含まれません。
// フィールドの検査はストア層に委ねるため、バインディング制約は付けません。
type CreateBlogReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import "github.com/gin-gonic/gin"

// Health はサービスヘルスチェック用の /api/health エンドポイントを処理します。
// キャッシュを防止しつつ固定メッセージを返します。
func Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")
	c.JSON(200, gin.H{"message": "Server is healthy"})
}

// Public は認証不要の確認用 /api/public エンドポイントを処理します。
func Public(c *gin.Context) {
	c.JSON(200, gin.H{"message": "This is a public endpoint"})
}

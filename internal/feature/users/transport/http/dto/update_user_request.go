package dto

// UpdateUserReq はPUT /api/usersエンドポイントのリクエストボディを表します。
// 省略されたフィールド（nil）は変更されません。
type UpdateUserReq struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

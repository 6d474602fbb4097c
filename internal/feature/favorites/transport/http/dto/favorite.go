// Package dto はfavoritesフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// SymbolReq は追加・削除エンドポイントのリクエストボディを表します。
// symbolが欠落または空文字の場合はバインド時に検証エラーになります。
type SymbolReq struct {
	Symbol string `json:"symbol" binding:"required"`
}

// FavoriteItem represents a favorite pair in API responses.
type FavoriteItem struct {
	ID     uint   `json:"id"`
	Symbol string `json:"symbol"`
	Order  int    `json:"order"`
}

// MessageRes is the response body for confirmations and errors.
type MessageRes struct {
	Message string `json:"message"`
}

// AddFavoriteRes is the response for a successful add.
// It carries the updated favorites list so clients can refresh without a second request.
// Favorites is nil only when re-reading the list failed; an empty list is sent as [].
type AddFavoriteRes struct {
	Message   string          `json:"message"`
	Favorites *[]FavoriteItem `json:"favorites,omitempty"`
}

// Package entity defines the domain models for the favorites feature.
package entity

// FavoritePair はユーザーがお気に入り登録した取引ペアを表します。
// Symbol は常に大文字で保持され、全レコードで一意です。
type FavoritePair struct {
	// ID はストアが作成時に採番する識別子です。作成後は変更されません。
	ID uint

	// Symbol は取引所のティッカー（例: BTCUSDT）です。
	Symbol string

	// Order は表示順のためのフィールドです。現在これを更新する操作はありません。
	Order int
}

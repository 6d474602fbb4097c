package domain

import (
	"strings"
	"unicode/utf8"
)

// MaxSymbolLength は保存可能なシンボルの最大文字数です。
const MaxSymbolLength = 20

// DefaultFavoriteSymbols は初回起動時に空のストアへ投入されるシンボルです。
var DefaultFavoriteSymbols = []string{"BTCUSDT", "ETHUSDT", "SOLUSDT", "DOGEUSDT", "BNBUSDT", "ADAUSDT"}

// NormalizeSymbol は前後の空白を除去して大文字に変換します。
// 結果が空、またはMaxSymbolLengthを超える場合はErrInvalidSymbolを返します。
func NormalizeSymbol(raw string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" || utf8.RuneCountInString(s) > MaxSymbolLength {
		return "", ErrInvalidSymbol
	}
	return s, nil
}

package binance

import (
	"context"
	"fmt"
	"net/http"

	gobinance "github.com/adshao/go-binance/v2"

	"crypto_backend/internal/feature/symbollist/usecase"
)

// ExchangeSymbolLister はBinanceのexchangeInfoからシンボル一覧を取得するSymbolLister実装です。
type ExchangeSymbolLister struct {
	client *gobinance.Client
}

// ExchangeSymbolListerがSymbolListerを実装していることをコンパイル時に検証します。
var _ usecase.SymbolLister = (*ExchangeSymbolLister)(nil)

// NewExchangeSymbolLister は指定された設定とHTTPクライアントでExchangeSymbolListerを生成します。
// httpClientがnilの場合はgo-binanceのデフォルトクライアントを使用します。
func NewExchangeSymbolLister(cfg Config, httpClient *http.Client) *ExchangeSymbolLister {
	c := gobinance.NewClient(cfg.APIKey, cfg.SecretKey)
	if cfg.BaseURL != "" {
		c.BaseURL = cfg.BaseURL
	}
	if httpClient != nil {
		c.HTTPClient = httpClient
	}
	return &ExchangeSymbolLister{client: c}
}

// ListSymbols は GET /api/v3/exchangeInfo を呼び出し、symbols[].symbol をそのまま返します。
// 通信失敗・HTTPエラー・不正なレスポンスはすべて usecase.ErrUpstreamUnavailable でラップされます。
// リトライは行いません。
func (l *ExchangeSymbolLister) ListSymbols(ctx context.Context) ([]string, error) {
	info, err := l.client.NewExchangeInfoService().Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: binance exchangeInfo: %v", usecase.ErrUpstreamUnavailable, err)
	}
	// symbolsフィールド自体が無いレスポンスは空一覧ではなく不正データとして扱う
	if info == nil || info.Symbols == nil {
		return nil, fmt.Errorf("%w: binance exchangeInfo: missing symbols", usecase.ErrUpstreamUnavailable)
	}

	out := make([]string, 0, len(info.Symbols))
	for i, s := range info.Symbols {
		if s.Symbol == "" {
			return nil, fmt.Errorf("%w: binance exchangeInfo: empty symbol at index %d", usecase.ErrUpstreamUnavailable, i)
		}
		out = append(out, s.Symbol)
	}
	return out, nil
}

package di

import (
	"crypto_backend/internal/platform/externalapi/binance"
	infrahttp "crypto_backend/internal/platform/http"
)

// NewSymbolLister creates a Binance exchange symbol lister with its own HTTP client.
func NewSymbolLister() *binance.ExchangeSymbolLister {
	cfg := binance.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return binance.NewExchangeSymbolLister(cfg, httpClient)
}

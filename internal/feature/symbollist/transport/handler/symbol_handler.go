// Package handler はsymbollistフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"crypto_backend/internal/feature/symbollist/usecase"
)

// SymbolUsecase は銘柄情報に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SymbolUsecase interface {
	ListExchangeSymbols(ctx context.Context) ([]string, error)
}

// SymbolHandler は取引所シンボルに関するHTTPリクエストを処理します。
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler は新しい SymbolHandler を作成します。
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// errorRes is the JSON error body.
type errorRes struct {
	Message string `json:"message"`
}

// List は取引所で取引可能なシンボル名の一覧を返すAPIです。
// 上流の取引所APIが失敗した場合は502 Bad Gatewayを返します。
func (h *SymbolHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListExchangeSymbols(c.Request.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrUpstreamUnavailable) {
			slog.Warn("exchange symbols unavailable", "error", err)
			c.JSON(http.StatusBadGateway, errorRes{Message: "Failed to fetch exchange symbols."})
			return
		}
		slog.Error("list exchange symbols failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorRes{Message: "Internal server error."})
		return
	}
	if symbols == nil {
		symbols = []string{}
	}
	c.JSON(http.StatusOK, symbols)
}

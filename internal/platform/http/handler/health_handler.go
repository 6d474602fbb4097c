// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HomeMessage is the plain-text body served at the root path.
const HomeMessage = "Crypto Price Tracker Backend is running!"

// Pinger はヘルスチェック対象の依存先（DBなど）を表します。
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler は /healthz を処理します。
// pinger が設定されている場合、GETでは依存先への疎通も確認します。
type HealthHandler struct {
	pinger  Pinger
	timeout time.Duration
}

// NewHealthHandler はHealthHandlerを生成します。pinger は nil でも構いません。
func NewHealthHandler(pinger Pinger) *HealthHandler {
	return &HealthHandler{pinger: pinger, timeout: 2 * time.Second}
}

// Home はルートパスで稼働確認用のテキストを返します。
func Home(c *gin.Context) {
	c.String(http.StatusOK, HomeMessage)
}

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// HTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
		return
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
		return
	}

	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
		defer cancel()
		if err := h.pinger.PingContext(ctx); err != nil {
			slog.Error("health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

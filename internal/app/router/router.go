package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	favoriteshandler "crypto_backend/internal/feature/favorites/transport/handler"
	symbollisthandler "crypto_backend/internal/feature/symbollist/transport/handler"
	"crypto_backend/internal/platform/http/handler"
)

func NewRouter(symbol *symbollisthandler.SymbolHandler, favorites *favoriteshandler.FavoritesHandler,
	health *handler.HealthHandler) *gin.Engine {
	r := gin.Default()

	// フロントエンドは別オリジンから呼び出すため全オリジンを許可
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(corsCfg))

	// 導通確認用
	r.GET("/", handler.Home)
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)
	r.OPTIONS("/healthz", health.Health)

	api := r.Group("/api/symbol")
	{
		// 取引所の全シンボル
		api.GET("", symbol.List)

		// お気に入り
		api.GET("/favorite", favorites.List)
		api.POST("/favorite", favorites.Add)
		api.DELETE("/favorite", favorites.Remove)
	}

	return r
}

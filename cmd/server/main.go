package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"crypto_backend/internal/app/config"
	"crypto_backend/internal/app/di"
	"crypto_backend/internal/app/router"
	"crypto_backend/internal/feature/favorites/domain"
	favoriteshandler "crypto_backend/internal/feature/favorites/transport/handler"
	favoritesusecase "crypto_backend/internal/feature/favorites/usecase"
	symbollisthandler "crypto_backend/internal/feature/symbollist/transport/handler"
	symbollistusecase "crypto_backend/internal/feature/symbollist/usecase"
	infradb "crypto_backend/internal/platform/db"
	"crypto_backend/internal/platform/http/handler"
	infraredis "crypto_backend/internal/platform/redis"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

// run はサーバーを起動し、ctxがキャンセルされて処理中のリクエストが終わるまでブロックします。
// DBとRedisの接続は戻る前に必ず閉じます。
func run(ctx context.Context) error {
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// db
	db, err := infradb.OpenDB(infradb.LoadConfigFromEnv())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Println("[ERROR] Failed to close database:", err)
		}
	}()

	// Redis（未設定・接続不可ならキャッシュなしで動かす）
	redisCfg := infraredis.LoadConfig()
	var rdb *redisv9.Client
	if redisCfg.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, redisCfg); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Store / Usecase
	favoritesStore := di.NewFavoritesStore(db, rdb, redisCfg.CacheTTL)
	favoritesUC := favoritesusecase.NewFavoritesUsecase(favoritesStore)
	symbolUC := symbollistusecase.NewSymbolUsecase(di.NewSymbolLister())

	// 初期お気に入り（テーブルが空のときのみ）
	if cfg.SeedDefaultFavorites {
		n, err := favoritesUC.SeedDefaults(ctx, domain.DefaultFavoriteSymbols)
		if err != nil {
			return fmt.Errorf("seed default favorites: %w", err)
		}
		slog.Info("default favorites seeded", "added", n)
	}

	// Handler
	symbolH := symbollisthandler.NewSymbolHandler(symbolUC)
	favoritesH := favoriteshandler.NewFavoritesHandler(favoritesUC)
	healthH := handler.NewHealthHandler(sqlDB)

	// ルータ生成
	r := router.NewRouter(symbolH, favoritesH, healthH)

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr(), err)
	}
	server := &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.Info("server listening", "addr", ln.Addr().String())
	if err := serve(ctx, server, ln, shutdownTimeout); err != nil {
		return err
	}
	slog.Info("server stopped")
	return nil
}

// serve はlnでリクエストを受け付け、ctxがキャンセルされたらShutdownします。
// Shutdownが処理中のリクエストを捌き終えるまで戻りません。
func serve(ctx context.Context, server *http.Server, ln net.Listener, timeout time.Duration) error {
	serveCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-serveCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-shutdownDone
	return nil
}

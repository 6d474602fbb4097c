// Package handler はfavoritesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"crypto_backend/internal/feature/favorites/domain"
	"crypto_backend/internal/feature/favorites/domain/entity"
	"crypto_backend/internal/feature/favorites/transport/http/dto"
)

// Response messages.
const (
	msgSymbolRequired  = "Symbol is required."
	msgInvalidSymbol   = "Invalid symbol."
	msgAlreadyFavorite = "Symbol already in favorites."
	msgNotFound        = "Symbol not found in favorites."
	msgInternal        = "Internal server error."
)

// FavoritesUsecase はお気に入り操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type FavoritesUsecase interface {
	ListFavorites(ctx context.Context) ([]entity.FavoritePair, error)
	AddFavorite(ctx context.Context, symbol string) (*entity.FavoritePair, error)
	RemoveFavorite(ctx context.Context, symbol string) error
}

// FavoritesHandler はお気に入り操作のHTTPリクエストを処理します。
type FavoritesHandler struct {
	uc FavoritesUsecase
}

// NewFavoritesHandler はFavoritesHandlerの新しいインスタンスを生成します。
func NewFavoritesHandler(uc FavoritesUsecase) *FavoritesHandler {
	return &FavoritesHandler{uc: uc}
}

// List はお気に入り一覧をJSON配列で返します。
// 0件の場合も空配列を返します。
func (h *FavoritesHandler) List(c *gin.Context) {
	favorites, err := h.uc.ListFavorites(c.Request.Context())
	if err != nil {
		slog.Error("list favorites failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: msgInternal})
		return
	}
	c.JSON(http.StatusOK, toItems(favorites))
}

// Add はお気に入り追加APIエンドポイントを処理します。
// - symbolが欠落・空白・長すぎる場合は400を返却
// - 既に登録済みの場合は400を返却
// - 成功時はメッセージと更新後の一覧を付けて201を返却
func (h *FavoritesHandler) Add(c *gin.Context) {
	symbol, ok := bindSymbol(c)
	if !ok {
		return
	}

	fp, err := h.uc.AddFavorite(c.Request.Context(), symbol)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateSymbol):
			slog.Info("favorite already exists", "symbol", symbol, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.MessageRes{Message: msgAlreadyFavorite})
		case errors.Is(err, domain.ErrInvalidSymbol):
			c.JSON(http.StatusBadRequest, dto.MessageRes{Message: msgInvalidSymbol})
		default:
			slog.Error("add favorite failed", "error", err, "symbol", symbol)
			c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: msgInternal})
		}
		return
	}
	slog.Info("favorite added", "symbol", fp.Symbol, "id", fp.ID, "remote_addr", c.ClientIP())

	res := dto.AddFavoriteRes{Message: fmt.Sprintf("%s added to favorites.", fp.Symbol)}
	// 追加自体はコミット済みなので、一覧取得の失敗はログのみに留める
	if favorites, err := h.uc.ListFavorites(c.Request.Context()); err != nil {
		slog.Warn("list favorites after add failed", "error", err)
	} else {
		items := toItems(favorites)
		res.Favorites = &items
	}
	c.JSON(http.StatusCreated, res)
}

// Remove はお気に入り削除APIエンドポイントを処理します。
// - symbolが欠落・空白の場合は400を返却
// - 登録されていない場合は404を返却
// - 成功時は200を返却
func (h *FavoritesHandler) Remove(c *gin.Context) {
	symbol, ok := bindSymbol(c)
	if !ok {
		return
	}

	if err := h.uc.RemoveFavorite(c.Request.Context(), symbol); err != nil {
		switch {
		case errors.Is(err, domain.ErrSymbolNotFound):
			c.JSON(http.StatusNotFound, dto.MessageRes{Message: msgNotFound})
		case errors.Is(err, domain.ErrInvalidSymbol):
			c.JSON(http.StatusBadRequest, dto.MessageRes{Message: msgInvalidSymbol})
		default:
			slog.Error("remove favorite failed", "error", err, "symbol", symbol)
			c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: msgInternal})
		}
		return
	}
	slog.Info("favorite removed", "symbol", symbol, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.MessageRes{Message: fmt.Sprintf("%s removed from favorites.", symbol)})
}

// bindSymbol はリクエストボディからsymbolを取り出し、大文字に正規化します。
// 失敗時は400を書き込み、falseを返します。
func bindSymbol(c *gin.Context) (string, bool) {
	var req dto.SymbolReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("favorite request validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: msgSymbolRequired})
		return "", false
	}
	symbol, err := domain.NormalizeSymbol(req.Symbol)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: msgInvalidSymbol})
		return "", false
	}
	return symbol, true
}

func toItems(favorites []entity.FavoritePair) []dto.FavoriteItem {
	out := make([]dto.FavoriteItem, 0, len(favorites))
	for _, f := range favorites {
		out = append(out, dto.FavoriteItem{ID: f.ID, Symbol: f.Symbol, Order: f.Order})
	}
	return out
}

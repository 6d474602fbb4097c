// Package adapters はfavoritesフィーチャーのストア実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"crypto_backend/internal/feature/favorites/domain"
	"crypto_backend/internal/feature/favorites/domain/entity"
	"crypto_backend/internal/feature/favorites/usecase"
)

// FavoritePairModel はfavorite_pairテーブルの行を表します。
// symbolのユニーク制約はストレージ層で保証されます。
type FavoritePairModel struct {
	ID     uint   `gorm:"primaryKey"`
	Symbol string `gorm:"size:20;not null;uniqueIndex"`
	Order  int    `gorm:"column:order;not null;default:0"`
}

// TableName returns the table name for FavoritePairModel.
func (FavoritePairModel) TableName() string {
	return "favorite_pair"
}

func toEntity(m FavoritePairModel) entity.FavoritePair {
	return entity.FavoritePair{ID: m.ID, Symbol: m.Symbol, Order: m.Order}
}

// favoriteGorm はFavoritesStoreインターフェースのGORM実装です。
// SQLiteとPostgreSQLのどちらでも動作します。
type favoriteGorm struct {
	db *gorm.DB
}

// favoriteGormがFavoritesStoreを実装していることをコンパイル時に検証します。
var _ usecase.FavoritesStore = (*favoriteGorm)(nil)

// NewFavoriteRepository は指定されたDB接続でfavoriteGormの新しいインスタンスを生成します。
func NewFavoriteRepository(db *gorm.DB) *favoriteGorm {
	return &favoriteGorm{db: db}
}

// List はid順（挿入順）にすべてのお気に入りを返します。
func (r *favoriteGorm) List(ctx context.Context) ([]entity.FavoritePair, error) {
	var rows []FavoritePairModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.FavoritePair, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// Add はシンボルを正規化して1件挿入します。
// INSERT ... ON CONFLICT DO NOTHING の1文で実行するため、
// 同時に同じシンボルが追加されても成功するのは1件だけです。
func (r *favoriteGorm) Add(ctx context.Context, symbol string) (*entity.FavoritePair, error) {
	s, err := domain.NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}

	m := FavoritePairModel{Symbol: s}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "symbol"}},
			DoNothing: true,
		}).
		Create(&m)
	if res.Error != nil {
		return nil, res.Error
	}
	// 挿入されなかった場合は既存レコードとの競合
	if res.RowsAffected == 0 {
		return nil, domain.ErrDuplicateSymbol
	}

	e := toEntity(m)
	return &e, nil
}

// Remove はシンボルに一致する行を削除します。
// 該当行がない場合はdomain.ErrSymbolNotFoundを返します。
func (r *favoriteGorm) Remove(ctx context.Context, symbol string) error {
	s, err := domain.NormalizeSymbol(symbol)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Where("symbol = ?", s).Delete(&FavoritePairModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrSymbolNotFound
	}
	return nil
}

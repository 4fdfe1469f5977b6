package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"inventory-api/internal/domain"
)

type ItemRepo struct{ db *gorm.DB }

func (r *ItemRepo) Create(ctx context.Context, it *domain.Item) error {
	return r.db.WithContext(ctx).Omit("Owner").Create(it).Error
}

func (r *ItemRepo) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	var it domain.Item
	err := r.db.WithContext(ctx).Preload("Owner").First(&it, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *ItemRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Item, error) {
	items := make([]domain.Item, 0)
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("created_by = ?", ownerID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepo) UpdateDetails(ctx context.Context, id string, p domain.ItemPatch, at time.Time) (bool, error) {
	cols := map[string]any{"updated_at": at}
	if v, ok := p.Name.Get(); ok {
		cols["name"] = v
	}
	if v, ok := p.Description.Get(); ok {
		cols["description"] = v
	}
	res := r.db.WithContext(ctx).Model(&domain.Item{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// AdjustStock 条件更新：stock + delta >= 0 才会命中，读改写在一条语句里完成
func (r *ItemRepo) AdjustStock(ctx context.Context, id string, delta int, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.Item{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		Updates(map[string]any{
			"stock":      gorm.Expr("stock + ?", delta),
			"updated_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *ItemRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Item{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

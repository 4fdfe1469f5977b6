package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"inventory-api/internal/domain"
)

type ActivityRepo struct{ db *gorm.DB }

// activityRow 是 activity_logs JOIN users/items 的扫描结果
type activityRow struct {
	ID              string
	ItemID          string
	UserID          string
	Action          string
	Quantity        int
	CreatedAt       time.Time
	UserName        string
	UserEmail       string
	ItemName        string
	ItemDescription *string
	ItemStock       int
}

func (row activityRow) toDomain() domain.ActivityLog {
	return domain.ActivityLog{
		ID:        row.ID,
		ItemID:    row.ItemID,
		UserID:    row.UserID,
		Action:    domain.StockAction(row.Action),
		Quantity:  row.Quantity,
		CreatedAt: row.CreatedAt,
		User:      domain.ActivityUser{ID: row.UserID, Name: row.UserName, Email: row.UserEmail},
		Item: domain.ActivityItem{
			ID:          row.ItemID,
			Name:        row.ItemName,
			Description: row.ItemDescription,
			Stock:       row.ItemStock,
		},
	}
}

func (r *ActivityRepo) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("activity_logs AS al").
		Select(`al.id, al.item_id, al.user_id, al.action, al.quantity, al.created_at,
			u.name AS user_name, u.email AS user_email,
			i.name AS item_name, i.description AS item_description, i.stock AS item_stock`).
		Joins("JOIN users u ON u.id = al.user_id").
		Joins("JOIN items i ON i.id = al.item_id")
}

func (r *ActivityRepo) Create(ctx context.Context, a *domain.ActivityLog) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ActivityRepo) FindByID(ctx context.Context, id string) (*domain.ActivityLog, error) {
	var rows []activityRow
	if err := r.joined(ctx).Where("al.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	a := rows[0].toDomain()
	return &a, nil
}

func (r *ActivityRepo) ListByItem(ctx context.Context, itemID string) ([]domain.ActivityLog, error) {
	var rows []activityRow
	err := r.joined(ctx).
		Where("al.item_id = ?", itemID).
		Order("al.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.ActivityLog, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ActivityRepo) DeleteByItem(ctx context.Context, itemID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("item_id = ?", itemID).Delete(&domain.ActivityLog{})
	return res.RowsAffected, res.Error
}

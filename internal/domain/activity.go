package domain

import (
	"context"
	"time"
)

type StockAction string

const (
	StockIn  StockAction = "IN"
	StockOut StockAction = "OUT"
)

func (a StockAction) Valid() bool { return a == StockIn || a == StockOut }

// Delta 入库为正，出库为负
func (a StockAction) Delta(quantity int) int {
	if a == StockOut {
		return -quantity
	}
	return quantity
}

// ActivityLog is append-only. User and Item are filled from a join at read time,
// so they reflect the current names rather than the ones at logging time.
type ActivityLog struct {
	ID        string       `gorm:"primaryKey;size:36" json:"id"`
	ItemID    string       `gorm:"size:36;not null;index:idx_activity_item_created,priority:1" json:"itemId"`
	UserID    string       `gorm:"size:36;not null;index" json:"userId"`
	Action    StockAction  `gorm:"size:8;not null" json:"action"`
	Quantity  int          `gorm:"not null;check:chk_activity_logs_quantity,quantity > 0" json:"quantity"`
	CreatedAt time.Time    `gorm:"index:idx_activity_item_created,priority:2" json:"createdAt"`
	User      ActivityUser `gorm:"-" json:"user"`
	Item      ActivityItem `gorm:"-" json:"item"`
}

func (ActivityLog) TableName() string { return "activity_logs" }

type ActivityUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ActivityItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Stock       int     `json:"stock"`
}

type ActivityRepository interface {
	Create(ctx context.Context, a *ActivityLog) error
	// FindByID returns (nil, nil) when missing.
	FindByID(ctx context.Context, id string) (*ActivityLog, error)
	// ListByItem is newest first.
	ListByItem(ctx context.Context, itemID string) ([]ActivityLog, error)
	DeleteByItem(ctx context.Context, itemID string) (int64, error)
}

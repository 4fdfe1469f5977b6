package domain

import (
	"context"
	"time"
)

type Item struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Stock       int       `gorm:"not null;check:chk_items_stock,stock >= 0" json:"stock"`
	OwnerID     string    `gorm:"column:created_by;size:36;not null;index" json:"ownerId"`
	Owner       *User     `gorm:"foreignKey:OwnerID;references:ID" json:"createdBy,omitempty"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Item) TableName() string { return "items" }

// ItemPatch 部分更新：只有 Set 的字段会写库，显式空串也算 Set
type ItemPatch struct {
	Name        Optional[string] `json:"name"`
	Description Optional[string] `json:"description"`
}

func (p ItemPatch) Empty() bool { return !p.Name.Set && !p.Description.Set }

type ItemRepository interface {
	Create(ctx context.Context, it *Item) error
	// FindByID returns (nil, nil) when the item does not exist.
	FindByID(ctx context.Context, id string) (*Item, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Item, error)
	UpdateDetails(ctx context.Context, id string, p ItemPatch, at time.Time) (bool, error)
	// AdjustStock applies delta only if the resulting stock stays non-negative.
	// It reports false when no row was changed.
	AdjustStock(ctx context.Context, id string, delta int, at time.Time) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

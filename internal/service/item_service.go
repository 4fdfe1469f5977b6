package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"inventory-api/internal/core/cache"
	"inventory-api/internal/core/errs"
	"inventory-api/internal/domain"
	"inventory-api/pkg/utils"
)

type CreateItemInput struct {
	Name        string
	Description *string
	Stock       *float64
}

type StockChange struct {
	Type     string
	Quantity float64
}

type StockResult struct {
	Item     *domain.Item        `json:"item"`
	Activity *domain.ActivityLog `json:"activity"`
}

var (
	errNegativeStock = errs.Validation("Stock cannot be negative")
	errStockOverflow = errs.Validation(fmt.Sprintf("Stock cannot exceed %d", maxStock))
)

type ItemService struct {
	store    domain.Store
	activity *ActivityService
	cache    *cache.Cache // nil 表示不启用
	cacheTTL time.Duration
	log      *zap.Logger
	now      func() time.Time
}

func NewItemService(store domain.Store, activity *ActivityService, c *cache.Cache, cacheTTL time.Duration, l *zap.Logger) *ItemService {
	return &ItemService{
		store:    store,
		activity: activity,
		cache:    c,
		cacheTTL: cacheTTL,
		log:      l,
		now:      time.Now,
	}
}

func itemKey(id string) string { return "item:" + id }

func (s *ItemService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, itemKey(id)); err != nil {
		s.log.Warn("item cache invalidation failed", zap.String("item_id", id), zap.Error(err))
	}
}

func (s *ItemService) Create(ctx context.Context, ownerID string, in CreateItemInput) (*domain.Item, error) {
	if err := requireID(ownerID, "User"); err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, errs.Validation("Name is required")
	}
	stock := 0
	if in.Stock != nil {
		v := *in.Stock
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			return nil, errs.Validation("Stock must be a number")
		case v < 0:
			return nil, errs.Validation("Initial stock cannot be negative")
		case !wholeNumber(v):
			return nil, errs.Validation("Stock must be a whole number")
		}
		stock = int(v)
	}

	now := s.now()
	it := domain.Item{
		ID:          utils.NewID(),
		Name:        in.Name,
		Description: in.Description,
		Stock:       stock,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Items().Create(ctx, &it); err != nil {
		return nil, errs.Internal("create item failed", err)
	}
	created, err := s.store.Items().FindByID(ctx, it.ID)
	if err != nil {
		return nil, errs.Internal("load item failed", err)
	}
	if created == nil {
		return nil, errs.Internal("Failed to fetch created item", nil)
	}
	return created, nil
}

// List returns the caller's items, newest first. No pagination.
func (s *ItemService) List(ctx context.Context, ownerID string) ([]domain.Item, error) {
	if err := requireID(ownerID, "User"); err != nil {
		return nil, err
	}
	items, err := s.store.Items().ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Internal("list items failed", err)
	}
	return items, nil
}

// Get 走读缓存，命中后仍校验归属。
// 一次在写事务提交前开始的回源可能在 invalidate 之后把旧值写回缓存，
// 此时最多在 redis.itemTTLSec 内读到旧库存。
func (s *ItemService) Get(ctx context.Context, id, ownerID string) (*domain.Item, error) {
	if err := requireID(id, "Item"); err != nil {
		return nil, err
	}
	if err := requireID(ownerID, "User"); err != nil {
		return nil, err
	}
	if s.cache == nil {
		return ownedItem(ctx, s.store.Items(), id, ownerID)
	}
	it, err := cache.GetOrLoadJSON(s.cache, ctx, itemKey(id), s.cacheTTL, func(ctx context.Context) (*domain.Item, error) {
		return s.store.Items().FindByID(ctx, id)
	})
	if err != nil {
		return nil, errs.Internal("load item failed", err)
	}
	if err := checkOwner(it, ownerID); err != nil {
		return nil, err
	}
	return it, nil
}

// UpdateDetails applies only the fields present in p; an explicit "" is written.
func (s *ItemService) UpdateDetails(ctx context.Context, id, ownerID string, p domain.ItemPatch) (*domain.Item, error) {
	if err := requireID(id, "Item"); err != nil {
		return nil, err
	}
	if p.Empty() {
		return nil, errs.Validation("At least one field (name or description) is required")
	}
	if err := requireID(ownerID, "User"); err != nil {
		return nil, err
	}
	if _, err := ownedItem(ctx, s.store.Items(), id, ownerID); err != nil {
		return nil, err
	}

	ok, err := s.store.Items().UpdateDetails(ctx, id, p, s.now())
	if err != nil {
		return nil, errs.Internal("update item failed", err)
	}
	if !ok {
		return nil, errs.Internal("Failed to update item", nil)
	}
	s.invalidate(ctx, id)

	updated, err := s.store.Items().FindByID(ctx, id)
	if err != nil {
		return nil, errs.Internal("load item failed", err)
	}
	if updated == nil {
		return nil, errs.Internal("Failed to update item", nil)
	}
	return updated, nil
}

// Delete removes the item together with its activity history.
func (s *ItemService) Delete(ctx context.Context, id, ownerID string) error {
	if err := requireID(id, "Item"); err != nil {
		return err
	}
	if err := requireID(ownerID, "User"); err != nil {
		return err
	}
	err := s.store.Atomic(ctx, func(tx domain.Store) error {
		if _, err := ownedItem(ctx, tx.Items(), id, ownerID); err != nil {
			return err
		}
		n, err := tx.Activities().DeleteByItem(ctx, id)
		if err != nil {
			return errs.Internal("delete activity logs failed", err)
		}
		if _, err := tx.Items().Delete(ctx, id); err != nil {
			return errs.Internal("delete item failed", err)
		}
		s.log.Info("item deleted", zap.String("item_id", id), zap.String("user_id", ownerID), zap.Int64("activity_logs", n))
		return nil
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// UpdateStock is the only write path for Item.Stock. The conditional adjustment and the
// activity log entry share one transaction, so either both persist or neither does.
func (s *ItemService) UpdateStock(ctx context.Context, id, ownerID string, in StockChange) (*StockResult, error) {
	if err := requireID(id, "Item"); err != nil {
		return nil, err
	}
	if err := requireID(ownerID, "User"); err != nil {
		return nil, err
	}
	action := domain.StockAction(in.Type)
	if !action.Valid() {
		return nil, errs.Validation("Invalid stock action type")
	}
	if !wholeNumber(in.Quantity) || in.Quantity <= 0 {
		return nil, errs.Validation("Quantity must be a positive integer")
	}
	quantity := int(in.Quantity)

	var out StockResult
	err := s.store.Atomic(ctx, func(tx domain.Store) error {
		it, err := ownedItem(ctx, tx.Items(), id, ownerID)
		if err != nil {
			return err
		}
		delta := action.Delta(quantity)
		if it.Stock+delta < 0 {
			return errNegativeStock
		}
		if it.Stock+delta > maxStock {
			return errStockOverflow
		}

		ok, err := tx.Items().AdjustStock(ctx, id, delta, s.now())
		if err != nil {
			return errs.Internal("Failed to update stock", err)
		}
		if !ok {
			// 读到的库存已被并发写改掉
			if _, err := ownedItem(ctx, tx.Items(), id, ownerID); err != nil {
				return err
			}
			return errNegativeStock
		}

		entry, err := s.activity.In(tx).Append(ctx, id, ownerID, action, quantity)
		if err != nil {
			return err
		}
		updated, err := tx.Items().FindByID(ctx, id)
		if err != nil {
			return errs.Internal("load item failed", err)
		}
		if updated == nil {
			return errs.Internal("Failed to update stock", nil)
		}
		out = StockResult{Item: updated, Activity: entry}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errNegativeStock):
			stockRejections.WithLabelValues("negative_stock").Inc()
		case errors.Is(err, errStockOverflow):
			stockRejections.WithLabelValues("stock_overflow").Inc()
		}
		return nil, err
	}
	s.invalidate(ctx, id)

	stockMovements.WithLabelValues(string(action)).Inc()
	stockMovementUnits.WithLabelValues(string(action)).Add(float64(quantity))
	s.log.Info("stock adjusted",
		zap.String("item_id", id),
		zap.String("user_id", ownerID),
		zap.String("action", string(action)),
		zap.Int("quantity", quantity),
		zap.Int("stock", out.Item.Stock),
	)
	return &out, nil
}

package service

import (
	"context"
	"math"

	"inventory-api/internal/core/errs"
	"inventory-api/internal/domain"
)

// requireID 在查库前拦截缺失 / 畸形的 ID
func requireID(id, what string) error {
	if id == "" {
		return errs.Validation(what + " ID is required")
	}
	if !domain.ValidID(id) {
		return errs.Validation(what + " ID must be a valid UUID")
	}
	return nil
}

// checkOwner runs after the existence check: missing is 404, someone else's is 403.
func checkOwner(it *domain.Item, userID string) error {
	if it == nil {
		return errs.NotFound("Item not found")
	}
	if it.OwnerID != userID {
		return errs.Forbidden("Access denied: You do not own this item")
	}
	return nil
}

func ownedItem(ctx context.Context, items domain.ItemRepository, id, userID string) (*domain.Item, error) {
	it, err := items.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Internal("load item failed", err)
	}
	if err := checkOwner(it, userID); err != nil {
		return nil, err
	}
	return it, nil
}

// maxStock items.stock 是 32 位 INTEGER 列
const maxStock = math.MaxInt32

// wholeNumber reports whether v is finite, integral and fits in an int32 column.
func wholeNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v == math.Trunc(v) && math.Abs(v) <= maxStock
}

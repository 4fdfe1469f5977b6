package service

import (
	"context"

	"go.uber.org/zap"

	"inventory-api/internal/core/errs"
	"inventory-api/internal/domain"
	"inventory-api/pkg/utils"
)

type ActivityService struct {
	store domain.Store
	log   *zap.Logger
}

func NewActivityService(store domain.Store, l *zap.Logger) *ActivityService {
	return &ActivityService{store: store, log: l}
}

// In binds the service to a transaction so Append commits or rolls back with the caller.
func (s *ActivityService) In(tx domain.Store) *ActivityService {
	return &ActivityService{store: tx, log: s.log}
}

// Append 记录一次库存变动；ID 再校验一遍，不信任调用方
func (s *ActivityService) Append(ctx context.Context, itemID, userID string, action domain.StockAction, quantity int) (*domain.ActivityLog, error) {
	if itemID == "" {
		return nil, errs.Validation("Item ID is required for activity log")
	}
	if !domain.ValidID(itemID) {
		return nil, errs.Validation("Item ID must be a valid UUID")
	}
	if userID == "" {
		return nil, errs.Validation("User ID is required for activity log")
	}
	if !domain.ValidID(userID) {
		return nil, errs.Validation("User ID must be a valid UUID")
	}
	if !action.Valid() {
		return nil, errs.Validation("Invalid stock action type")
	}
	if quantity <= 0 {
		return nil, errs.Validation("Quantity must be a positive integer")
	}

	entry := domain.ActivityLog{
		ID:       utils.NewID(),
		ItemID:   itemID,
		UserID:   userID,
		Action:   action,
		Quantity: quantity,
	}
	if err := s.store.Activities().Create(ctx, &entry); err != nil {
		return nil, errs.Internal("create activity log failed", err)
	}
	created, err := s.store.Activities().FindByID(ctx, entry.ID)
	if err != nil {
		return nil, errs.Internal("load activity log failed", err)
	}
	if created == nil {
		return nil, errs.Internal("Failed to fetch created activity log", nil)
	}
	return created, nil
}

func (s *ActivityService) ListForItem(ctx context.Context, itemID, requesterID string) ([]domain.ActivityLog, error) {
	if err := requireID(itemID, "Item"); err != nil {
		return nil, err
	}
	if err := requireID(requesterID, "User"); err != nil {
		return nil, err
	}
	if _, err := ownedItem(ctx, s.store.Items(), itemID, requesterID); err != nil {
		return nil, err
	}
	logs, err := s.store.Activities().ListByItem(ctx, itemID)
	if err != nil {
		return nil, errs.Internal("list activity logs failed", err)
	}
	return logs, nil
}

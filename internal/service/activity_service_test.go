package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-api/internal/core/errs"
	"inventory-api/internal/domain"
	"inventory-api/pkg/utils"
)

func TestActivity_AppendRevalidates(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	it := f.create(t, 0)

	cases := []struct {
		name           string
		itemID, userID string
		action         domain.StockAction
		qty            int
		msg            string
	}{
		{"no item", "", f.ann.ID, domain.StockIn, 1, "Item ID is required for activity log"},
		{"bad item", "x", f.ann.ID, domain.StockIn, 1, "Item ID must be a valid UUID"},
		{"no user", it.ID, "", domain.StockIn, 1, "User ID is required for activity log"},
		{"bad user", it.ID, "x", domain.StockIn, 1, "User ID must be a valid UUID"},
		{"bad action", it.ID, f.ann.ID, "SWAP", 1, "Invalid stock action type"},
		{"zero qty", it.ID, f.ann.ID, domain.StockOut, 0, "Quantity must be a positive integer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.activity.Append(ctx, tc.itemID, tc.userID, tc.action, tc.qty)
			assertKind(t, err, errs.KindValidation, tc.msg)
		})
	}

	entry, err := f.activity.Append(ctx, it.ID, f.ann.ID, domain.StockIn, 3)
	require.NoError(t, err)
	assert.Equal(t, it.ID, entry.Item.ID)
	assert.Equal(t, "Bolt", entry.Item.Name)
	assert.Equal(t, f.ann.Email, entry.User.Email)
}

func TestActivity_ListForItem(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	it := f.create(t, 0)

	logs, err := f.activity.ListForItem(ctx, it.ID, f.ann.ID)
	require.NoError(t, err)
	assert.Empty(t, logs)

	_, err = f.activity.ListForItem(ctx, "bad", f.ann.ID)
	assertKind(t, err, errs.KindValidation, "Item ID must be a valid UUID")
	_, err = f.activity.ListForItem(ctx, utils.NewID(), f.ann.ID)
	assertKind(t, err, errs.KindNotFound, "Item not found")
}

package repo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-api/internal/domain"
	"inventory-api/internal/repo"
	"inventory-api/internal/testutil"
	"inventory-api/pkg/utils"
)

func newItem(owner string, stock int) *domain.Item {
	now := time.Now()
	return &domain.Item{ID: utils.NewID(), Name: "Bolt", Stock: stock, OwnerID: owner, CreatedAt: now, UpdatedAt: now}
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	db := testutil.OpenDB(t)
	s := repo.NewStore(db)
	ctx := context.Background()

	testutil.SeedUser(t, db, "Ann", "ann@example.com")
	err := s.Users().Create(ctx, &domain.User{ID: utils.NewID(), Name: "Other", Email: "ann@example.com", PasswordHash: "y"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	u, err := s.Users().FindByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.Name)

	missing, err := s.Users().FindByID(ctx, utils.NewID())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestItemRepo_CRUD(t *testing.T) {
	db := testutil.OpenDB(t)
	s := repo.NewStore(db)
	ctx := context.Background()
	owner := testutil.SeedUser(t, db, "Ann", "ann@example.com")

	it := newItem(owner.ID, 3)
	require.NoError(t, s.Items().Create(ctx, it))

	got, err := s.Items().FindByID(ctx, it.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Owner)
	assert.Equal(t, "ann@example.com", got.Owner.Email)
	assert.Nil(t, got.Description)

	ok, err := s.Items().UpdateDetails(ctx, it.ID, domain.ItemPatch{Description: domain.Some("")}, time.Now())
	require.NoError(t, err)
	assert.True(t, ok)
	got, err = s.Items().FindByID(ctx, it.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Description)
	assert.Equal(t, "", *got.Description)
	assert.Equal(t, "Bolt", got.Name)

	ok, err = s.Items().Delete(ctx, it.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	got, err = s.Items().FindByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err = s.Items().Delete(ctx, it.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestItemRepo_ListByOwnerNewestFirst(t *testing.T) {
	db := testutil.OpenDB(t)
	s := repo.NewStore(db)
	ctx := context.Background()
	ann := testutil.SeedUser(t, db, "Ann", "ann@example.com")
	bob := testutil.SeedUser(t, db, "Bob", "bob@example.com")

	older := newItem(ann.ID, 0)
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := newItem(ann.ID, 0)
	require.NoError(t, s.Items().Create(ctx, older))
	require.NoError(t, s.Items().Create(ctx, newer))
	require.NoError(t, s.Items().Create(ctx, newItem(bob.ID, 0)))

	items, err := s.Items().ListByOwner(ctx, ann.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, newer.ID, items[0].ID)
	assert.Equal(t, older.ID, items[1].ID)

	none, err := s.Items().ListByOwner(ctx, utils.NewID())
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestItemRepo_AdjustStockIsConditional(t *testing.T) {
	db := testutil.OpenDB(t)
	s := repo.NewStore(db)
	ctx := context.Background()
	owner := testutil.SeedUser(t, db, "Ann", "ann@example.com")
	it := newItem(owner.ID, 10)
	require.NoError(t, s.Items().Create(ctx, it))

	// 两个请求都读到 stock=10：第一个扣 8 成功
	ok, err := s.Items().AdjustStock(ctx, it.ID, -8, time.Now())
	require.NoError(t, err)
	assert.True(t, ok)

	// 第二个基于过期读数扣 5，条件更新拒绝，不会出现丢失更新或负库存
	ok, err = s.Items().AdjustStock(ctx, it.ID, -5, time.Now())
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := s.Items().FindByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stock)

	ok, err = s.Items().AdjustStock(ctx, it.ID, -2, time.Now())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Items().AdjustStock(ctx, utils.NewID(), 1, time.Now())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestActivityRepo_JoinedReads(t *testing.T) {
	db := testutil.OpenDB(t)
	s := repo.NewStore(db)
	ctx := context.Background()
	owner := testutil.SeedUser(t, db, "Ann", "ann@example.com")
	it := newItem(owner.ID, 5)
	require.NoError(t, s.Items().Create(ctx, it))

	first := &domain.ActivityLog{ID: utils.NewID(), ItemID: it.ID, UserID: owner.ID, Action: domain.StockIn, Quantity: 5, CreatedAt: time.Now().Add(-time.Minute)}
	second := &domain.ActivityLog{ID: utils.NewID(), ItemID: it.ID, UserID: owner.ID, Action: domain.StockOut, Quantity: 2}
	require.NoError(t, s.Activities().Create(ctx, first))
	require.NoError(t, s.Activities().Create(ctx, second))

	got, err := s.Activities().FindByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.StockIn, got.Action)
	assert.Equal(t, "Ann", got.User.Name)
	assert.Equal(t, "Bolt", got.Item.Name)
	assert.Equal(t, 5, got.Item.Stock)

	logs, err := s.Activities().ListByItem(ctx, it.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, second.ID, logs[0].ID)
	assert.Equal(t, first.ID, logs[1].ID)

	missing, err := s.Activities().FindByID(ctx, utils.NewID())
	require.NoError(t, err)
	assert.Nil(t, missing)

	n, err := s.Activities().DeleteByItem(ctx, it.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestStore_AtomicRollsBack(t *testing.T) {
	db := testutil.OpenDB(t)
	s := repo.NewStore(db)
	ctx := context.Background()
	owner := testutil.SeedUser(t, db, "Ann", "ann@example.com")
	it := newItem(owner.ID, 1)
	require.NoError(t, s.Items().Create(ctx, it))

	boom := errors.New("boom")
	err := s.Atomic(ctx, func(tx domain.Store) error {
		ok, err := tx.Items().AdjustStock(ctx, it.ID, 4, time.Now())
		require.NoError(t, err)
		require.True(t, ok)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.Items().FindByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Stock)

	require.NoError(t, s.Atomic(ctx, func(tx domain.Store) error {
		_, err := tx.Items().AdjustStock(ctx, it.ID, 4, time.Now())
		return err
	}))
	got, err = s.Items().FindByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)
}

func TestStockCheckConstraint(t *testing.T) {
	db := testutil.OpenDB(t)
	owner := testutil.SeedUser(t, db, "Ann", "ann@example.com")
	err := repo.NewStore(db).Items().Create(context.Background(), newItem(owner.ID, -1))
	assert.Error(t, err)
}

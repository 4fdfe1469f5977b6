package repo

import (
	"context"

	"gorm.io/gorm"

	"inventory-api/internal/domain"
)

// Store 持有一个 *gorm.DB（连接池或事务），仓储共享它
type Store struct{ db *gorm.DB }

var _ domain.Store = (*Store)(nil)

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

func (s *Store) Users() domain.UserRepository          { return &UserRepo{db: s.db} }
func (s *Store) Items() domain.ItemRepository          { return &ItemRepo{db: s.db} }
func (s *Store) Activities() domain.ActivityRepository { return &ActivityRepo{db: s.db} }

func (s *Store) Atomic(ctx context.Context, fn func(tx domain.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// Models 自动迁移用（dev / 测试），生产走 cmd/migrate
func Models() []any {
	return []any{&domain.User{}, &domain.Item{}, &domain.ActivityLog{}}
}

func AutoMigrate(db *gorm.DB) error { return db.AutoMigrate(Models()...) }

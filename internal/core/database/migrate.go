package database

import (
	"context"
	"fmt"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"inventory-api/migrations"
)

// Migrate 执行 goose 命令（up / down / status / version / redo / reset）
// goose 的配置是包级全局变量，只在单进程 CLI 里调用
func Migrate(ctx context.Context, db *gorm.DB, driver, command string, l *zap.Logger, args ...string) error {
	dialect, dir, err := migrations.Dialect(driver)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	std, err := zap.NewStdLogAt(l, zapcore.InfoLevel)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	goose.SetLogger(std)
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	l.Info("migrate", zap.String("command", command), zap.String("dialect", dialect), zap.Strings("args", args))
	if err := goose.RunContext(ctx, command, sqlDB, dir, args...); err != nil {
		return fmt.Errorf("migrate %s: %w", command, err)
	}
	return nil
}

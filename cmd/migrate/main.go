package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"inventory-api/internal/core/config"
	"inventory-api/internal/core/database"
	"inventory-api/internal/core/logger"
)

const usage = `usage: migrate [flags] <command> [args]

commands:
  up            apply all pending migrations
  up-to VERSION apply migrations up to VERSION
  down          roll back the latest migration
  redo          roll back and re-apply the latest migration
  reset         roll back all migrations
  status        print migration status
  version       print the current version

flags:
`

func main() {
	var (
		cfgPath = pflag.StringP("config", "c", os.Getenv("CONFIG_PATH"), "config file path")
		timeout = pflag.Duration("timeout", 5*time.Minute, "overall timeout")
	)
	pflag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		pflag.PrintDefaults()
	}
	pflag.Parse()
	if pflag.NArg() < 1 {
		pflag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.Load(*cfgPath)
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       1,
		MaxIdleConns:       1,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
		Logger:             log,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	args := pflag.Args()
	if err := database.Migrate(ctx, db, cfg.DB.Driver, args[0], log.Named("goose"), args[1:]...); err != nil {
		log.Error("migrate failed", zap.Error(err))
		cleanup()
		os.Exit(1)
	}
	log.Info("migrate done", zap.String("command", args[0]))
}

// Package migrations 按方言存放 goose SQL，编译进二进制
package migrations

import (
	"embed"
	"fmt"
)

//go:embed postgres/*.sql mysql/*.sql sqlite/*.sql
var FS embed.FS

// Dialect 返回 goose 方言名和 FS 内的目录
func Dialect(driver string) (dialect, dir string, err error) {
	switch driver {
	case "postgres":
		return "postgres", "postgres", nil
	case "mysql":
		return "mysql", "mysql", nil
	case "sqlite":
		return "sqlite3", "sqlite", nil
	default:
		return "", "", fmt.Errorf("migrations: unsupported driver %q", driver)
	}
}

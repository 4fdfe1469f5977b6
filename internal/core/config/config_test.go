package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
app:
  name: inventory-api
  http:
    port: 8088
log:
  level: debug
jwt:
  secret: from-file
  accessTokenTTLMin: 15
db:
  driver: sqlite
  dsn: file:test.db
redis:
  addr: 127.0.0.1:6379
  itemTTLSec: 5
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestRead_FileAndDefaults(t *testing.T) {
	c, err := Read(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, 8088, c.App.HTTP.Port)
	assert.Equal(t, "0.0.0.0", c.App.HTTP.Host)
	assert.Equal(t, 10, c.App.HTTP.RequestTimeoutSec)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, 15*time.Minute, c.JWT.TTL())
	assert.Equal(t, "inventory-api", c.JWT.Issuer)
	assert.Equal(t, "sqlite", c.DB.Driver)
	assert.True(t, c.Redis.Enabled())
	assert.Equal(t, 5*time.Second, c.Redis.ItemTTL())
}

func TestRead_EnvOverride(t *testing.T) {
	t.Setenv("APP_JWT_SECRET", "from-env")
	t.Setenv("APP_APP_HTTP_PORT", "9999")

	c, err := Read(writeConfig(t, sample))
	require.NoError(t, err)
	assert.Equal(t, "from-env", c.JWT.Secret)
	assert.Equal(t, 9999, c.App.HTTP.Port)
}

func TestRead_MissingSecret(t *testing.T) {
	_, err := Read(writeConfig(t, "db:\n  driver: postgres\n"))
	assert.ErrorContains(t, err, "jwt.secret")
}

func TestRead_UnsupportedDriver(t *testing.T) {
	_, err := Read(writeConfig(t, "jwt:\n  secret: x\ndb:\n  driver: oracle\n"))
	assert.ErrorContains(t, err, "oracle")
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

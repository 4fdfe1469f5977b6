package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNormalizeMySQLDSN(t *testing.T) {
	cases := []struct {
		name, in, user, pass, want string
	}{
		{"empty", "", "", "", ""},
		{"native dsn untouched", "root:pw@tcp(127.0.0.1:3306)/inv?parseTime=true", "", "", "root:pw@tcp(127.0.0.1:3306)/inv?parseTime=true"},
		{"url form", "mysql://root:pw@db:3306/inv", "", "", "root:pw@tcp(db:3306)/inv?charset=utf8mb4&parseTime=true"},
		{"jdbc form with overrides", "jdbc:mysql://db:3306/inv?useSSL=false&serverTimezone=UTC", "app", "secret", "app:secret@tcp(db:3306)/inv?charset=utf8mb4&loc=UTC&parseTime=true&tls=false"},
		{"query credentials", "mysql://db:3306/inv?user=u&password=p&characterEncoding=latin1&useUnicode=true", "", "", "u:p@tcp(db:3306)/inv?charset=latin1&parseTime=true"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeMySQLDSN(tc.in, tc.user, tc.pass))
		})
	}
}

func TestMaskDSN(t *testing.T) {
	assert.Equal(t, "root:****@tcp(db:3306)/inv", maskDSN("root:pw@tcp(db:3306)/inv"))
	assert.Equal(t, "tcp(db:3306)/inv", maskDSN("tcp(db:3306)/inv"))
}

func TestNewGorm_UnsupportedDriver(t *testing.T) {
	_, err := NewGorm(Opts{Driver: "oracle"})
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewGorm_SQLite(t *testing.T) {
	db, err := NewGorm(Opts{
		Driver:       "sqlite",
		DSN:          filepath.Join(t.TempDir(), "inv.db"),
		MaxOpenConns: 2,
		MaxIdleConns: 1,
		LogLevel:     "silent",
		Logger:       zaptest.NewLogger(t),
	})
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
	assert.NoError(t, Close(db))
}

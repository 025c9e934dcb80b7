package configs

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"littlelemon/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDSN(t *testing.T) {
	assert.Equal(t, "a.db?"+sqliteParams, DSN("a.db"))
	assert.Equal(t, "file:a.db?cache=shared&"+sqliteParams, DSN("file:a.db?cache=shared"))
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("RATE_LIMIT_BURST", "bogus")
	t.Setenv("CORS_ORIGINS", "http://a,http://b")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_EMAIL", "root@example.com")

	cfg := LoadConfig()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 0.5, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, []string{"http://a", "http://b"}, cfg.CORSOrigins)
	assert.Equal(t, "root", cfg.AdminUsername)
	assert.Empty(t, cfg.AdminPassword)
	assert.Equal(t, "root@example.com", cfg.AdminEmail)
}

func TestSeedsAreIdempotent(t *testing.T) {
	db, err := ConnectionDB(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	require.NoError(t, SetupDatabase(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	cfg := &Config{AdminUsername: "root", AdminPassword: "pw123456", AdminEmail: "root@example.com"}
	log := NewLogger("panic")
	require.NoError(t, SeedAdmin(db, &Config{AdminUsername: "nopass"}, log))
	for i := 0; i < 2; i++ {
		require.NoError(t, SeedGroups(db))
		require.NoError(t, SeedAdmin(db, cfg, log))
	}

	var groups, admins int64
	require.NoError(t, db.Model(&entity.Group{}).Count(&groups).Error)
	require.NoError(t, db.Model(&entity.User{}).Where("is_staff = ?", true).Count(&admins).Error)
	assert.EqualValues(t, len(entity.Roles), groups)
	assert.EqualValues(t, 1, admins)
	assert.Equal(t, logrus.PanicLevel, log.GetLevel())
}

func TestMissingRowIsNotLogged(t *testing.T) {
	var buf bytes.Buffer
	db, err := openDB(filepath.Join(t.TempDir(), "log.db"), newGormLogger(&buf))
	require.NoError(t, err)
	require.NoError(t, SetupDatabase(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	buf.Reset()

	var u entity.User
	require.ErrorIs(t, db.First(&u, 99).Error, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	var n int
	require.Error(t, db.Raw("SELECT count(*) FROM no_such_table").Scan(&n).Error)
	assert.Contains(t, buf.String(), "no_such_table")
}

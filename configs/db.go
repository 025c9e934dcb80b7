package configs

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"littlelemon/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// _txlock=immediate takes the write lock at BEGIN so checkout and order
// updates serialize.
const sqliteParams = "_txlock=immediate&_foreign_keys=1&_busy_timeout=5000"

func DSN(source string) string {
	sep := "?"
	if strings.Contains(source, "?") {
		sep = "&"
	}
	return source + sep + sqliteParams
}

// newGormLogger logs warnings and slow queries. Cart upserts probe with
// First, so a missing row is not worth a log line.
func newGormLogger(w io.Writer) logger.Interface {
	return logger.New(log.New(w, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

func ConnectionDB(source string) (*gorm.DB, error) {
	return openDB(source, newGormLogger(os.Stdout))
}

func openDB(source string, l logger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(DSN(source)), &gorm.Config{Logger: l})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{}, &entity.Group{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CartLine{},
		&entity.Order{}, &entity.OrderItem{},
	)
}

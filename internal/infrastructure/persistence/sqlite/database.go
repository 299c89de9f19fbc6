// Package sqlite provides SQLite database setup and configuration
package sqlite

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormmodels "github.com/platewise/v1/internal/infrastructure/persistence/gorm"
)

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := gormmodels.Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

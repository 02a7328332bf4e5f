package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"spacevenue/internal/models"
)

var DB *gorm.DB

// now is the clock used for stored timestamps; tests override it to pin
// rows to known instants.
var now = time.Now

// Initialize opens the database at the given path and runs migrations. An
// empty path means the default location under the user's home directory.
func Initialize(path string) error {
	if path == "" {
		var err error
		path, err = defaultDatabasePath()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = db

	if err := runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// defaultDatabasePath returns the path to the SQLite database file.
func defaultDatabasePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".spacevenue", "space.db"), nil
}

// runMigrations creates/updates the database schema.
func runMigrations() error {
	return DB.AutoMigrate(
		&models.Item{},
		&models.ItemSale{},
		&models.CashTransaction{},
		&models.Session{},
	)
}

// Close closes the database connection.
func Close() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

package database

import (
	"fmt"
	"log"

	"github.com/charitha1008/Mini-Project/internal/config"
	"github.com/charitha1008/Mini-Project/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the relational backend selected by cfg and migrates the
// entries table.
func InitDB(cfg config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Storage {
	case config.StoragePostgres:
		dialector = postgres.Open(cfg.PostgresDSN())
	case config.StorageSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("storage %q is not a database backend", cfg.Storage)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Storage, err)
	}

	// Auto-migrate the entries table
	if err := db.AutoMigrate(&model.Entry{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	log.Printf("Connected to %s database", cfg.Storage)
	return db, nil
}

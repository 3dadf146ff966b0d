package storage

import (
	"errors"
	"fmt"

	"github.com/charitha1008/Mini-Project/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStorage stores each key as a row of the entries table.
type GormStorage struct {
	db *gorm.DB
}

// NewGormStorage expects db to have model.Entry migrated.
func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func (s *GormStorage) Get(key string) (string, bool, error) {
	var entry model.Entry
	err := s.db.Where(map[string]interface{}{"key": key}).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: get %s: %v", ErrStorage, key, err)
	}
	return entry.Value, true, nil
}

func (s *GormStorage) Set(key, value string) error {
	entry := model.Entry{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrStorage, key, err)
	}
	return nil
}

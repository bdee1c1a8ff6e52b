package prefs

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Entry is one persisted key.
type Entry struct {
	ID        uint      `gorm:"primaryKey"`
	Key       string    `gorm:"uniqueIndex;size:100"`
	Value     string    `gorm:"type:text"`
	UpdatedAt time.Time
}

func (Entry) TableName() string {
	return "prefs"
}

// SQLite stores each key as a row in the prefs table.
type SQLite struct {
	db *gorm.DB
}

func OpenSQLite(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open prefs database: %w", err)
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate prefs database: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Load(key string) ([]byte, bool, error) {
	var entry Entry
	err := s.db.Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(entry.Value), true, nil
}

func (s *SQLite) Save(key string, raw []byte) error {
	var entry Entry
	result := s.db.Where("key = ?", key).First(&entry)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		entry = Entry{Key: key, Value: string(raw)}
		return s.db.Create(&entry).Error
	} else if result.Error != nil {
		return result.Error
	}

	entry.Value = string(raw)
	return s.db.Save(&entry).Error
}

func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

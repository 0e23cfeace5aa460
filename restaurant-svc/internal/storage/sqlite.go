package storage

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type kvEntry struct {
	Key       string `gorm:"column:entry_key;primaryKey"`
	Value     []byte `gorm:"column:entry_value;not null"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string { return "kv_entries" }

// SQLiteStore is the single-file backend used for local runs.
type SQLiteStore struct {
	DB *gorm.DB
}

func NewSQLiteStore(db *gorm.DB) (*SQLiteStore, error) {
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, err
	}
	return &SQLiteStore{DB: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry kvEntry
	err := s.DB.WithContext(ctx).Where("entry_key = ?", key).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return entry.Value, nil
}

func (s *SQLiteStore) Put(ctx context.Context, key string, value []byte) error {
	entry := kvEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"entry_value", "updated_at"}),
	}).Create(&entry).Error
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	return s.DB.WithContext(ctx).Where("entry_key = ?", key).Delete(&kvEntry{}).Error
}

func (s *SQLiteStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys := []string{}
	err := s.DB.WithContext(ctx).Model(&kvEntry{}).
		Where("substr(entry_key, 1, ?) = ?", utf8.RuneCountInString(prefix), prefix).
		Order("entry_key").
		Pluck("entry_key", &keys).Error
	return keys, err
}

var _ Store = (*SQLiteStore)(nil)

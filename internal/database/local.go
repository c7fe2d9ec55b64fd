package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KeyValue is the single-table schema behind LocalStore.
type KeyValue struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value string `gorm:"type:text"`
}

func (KeyValue) TableName() string {
	return "key_values"
}

// LocalStore persists blobs in a SQLite file. It is the default backend when
// no Redis is configured, keeping the app fully self-contained.
type LocalStore struct {
	db *gorm.DB
}

// NewLocalStore opens (or creates) the SQLite database at path and ensures
// the schema exists. Pass ":memory:" for an ephemeral store.
func NewLocalStore(path string) (*LocalStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store at %s: %w", path, err)
	}

	if err := db.AutoMigrate(&KeyValue{}); err != nil {
		return nil, fmt.Errorf("failed to migrate local store: %w", err)
	}

	log.Printf("Using local store at %s", path)
	return &LocalStore{db: db}, nil
}

func (s *LocalStore) Get(ctx context.Context, key string) ([]byte, error) {
	var kv KeyValue
	err := s.db.WithContext(ctx).First(&kv, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return []byte(kv.Value), nil
}

func (s *LocalStore) Set(ctx context.Context, key string, value []byte) error {
	kv := KeyValue{Key: key, Value: string(value)}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

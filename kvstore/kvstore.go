package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("kvstore: key not found")

// Entry is one persisted key/value pair.
type Entry struct {
	Key       string `gorm:"primaryKey;size:120"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

// Store is a small persistent key-value cache backed by sqlite. The gateway
// uses it for credentials, the cached user profile, the device id and the
// last-known location so they survive restarts.
type Store struct {
	db *gorm.DB
}

func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(key string) (string, error) {
	var e Entry
	if err := s.db.First(&e, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return e.Value, nil
}

func (s *Store) Put(key, value string) error {
	e := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.Save(&e).Error
}

func (s *Store) Delete(key string) error {
	return s.db.Delete(&Entry{}, "key = ?", key).Error
}

// PutJSON stores the JSON encoding of v under key.
func (s *Store) PutJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Put(key, string(data))
}

// GetJSON decodes the value stored under key into dest.
func (s *Store) GetJSON(key string, dest any) error {
	raw, err := s.Get(key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), dest)
}

// Package store persists extraction results and in-flight task progress.
// Results are keyed by the SHA-256 hash of the source document, so repeated
// extraction of the same markdown is served from storage.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tubedigest/tubedigest/pkg/errors"
	"github.com/tubedigest/tubedigest/pkg/interfaces"
	"github.com/tubedigest/tubedigest/pkg/types"
)

// SummaryRecord is the stored form of one extraction result.
type SummaryRecord struct {
	DocHash   string    `gorm:"primaryKey;size:64"`
	Title     string    `gorm:"index"`
	Result    []byte    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// ProgressRecord tracks one in-flight summarization task. Records expire
// after a configurable TTL and are invisible once expired.
type ProgressRecord struct {
	TaskID    string    `gorm:"primaryKey;size:128"`
	Data      []byte    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	ExpiresAt time.Time `gorm:"index"`
}

// Store implements interfaces.SummaryStore and interfaces.ProgressStore on a
// single SQLite database.
type Store struct {
	db          *gorm.DB
	progressTTL time.Duration
	logger      interfaces.Logger
}

// Options configures a Store.
type Options struct {
	DatabasePath string
	ProgressTTL  time.Duration
}

// New opens (or creates) the database and migrates the schema.
func New(opts Options, logger interfaces.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(opts.DatabasePath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.NewDatabaseError("failed to open database", err)
	}

	if err := db.AutoMigrate(&SummaryRecord{}, &ProgressRecord{}); err != nil {
		return nil, errors.NewDatabaseError("failed to migrate schema", err)
	}

	ttl := opts.ProgressTTL
	if ttl <= 0 {
		ttl = 4 * time.Hour
	}

	return &Store{db: db, progressTTL: ttl, logger: logger}, nil
}

// HashDocument returns the storage key for a raw document.
func HashDocument(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// SaveResult stores result under docHash, replacing any previous record.
func (s *Store) SaveResult(ctx context.Context, docHash string, result *types.ExtractionResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return errors.NewInternalErrorWithCause("failed to serialize result", err)
	}

	record := SummaryRecord{
		DocHash: docHash,
		Title:   result.VideoContext.Title,
		Result:  payload,
	}
	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		return errors.NewDatabaseError("failed to save result", err)
	}
	return nil
}

// GetResult retrieves a stored result by document hash.
func (s *Store) GetResult(ctx context.Context, docHash string) (*types.ExtractionResult, error) {
	var record SummaryRecord
	err := s.db.WithContext(ctx).First(&record, "doc_hash = ?", docHash).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.NewNotFoundError("summary")
	}
	if err != nil {
		return nil, errors.NewDatabaseError("failed to load result", err)
	}

	var result types.ExtractionResult
	if err := json.Unmarshal(record.Result, &result); err != nil {
		return nil, errors.NewInternalErrorWithCause("failed to deserialize result", err)
	}
	return &result, nil
}

// SetProgress stores or replaces the progress record for a task and resets
// its expiry.
func (s *Store) SetProgress(ctx context.Context, taskID string, data map[string]interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return errors.NewInternalErrorWithCause("failed to serialize progress", err)
	}

	record := ProgressRecord{
		TaskID:    taskID,
		Data:      payload,
		ExpiresAt: time.Now().Add(s.progressTTL),
	}
	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		return errors.NewDatabaseError("failed to save progress", err)
	}
	return nil
}

// GetProgress retrieves progress for a task. Expired records behave as
// missing.
func (s *Store) GetProgress(ctx context.Context, taskID string) (map[string]interface{}, error) {
	var record ProgressRecord
	err := s.db.WithContext(ctx).
		First(&record, "task_id = ? AND expires_at > ?", taskID, time.Now()).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.NewNotFoundError("progress")
	}
	if err != nil {
		return nil, errors.NewDatabaseError("failed to load progress", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(record.Data, &data); err != nil {
		return nil, errors.NewInternalErrorWithCause("failed to deserialize progress", err)
	}
	return data, nil
}

// CleanupExpired deletes expired progress records and returns the count.
func (s *Store) CleanupExpired(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&ProgressRecord{})
	if res.Error != nil {
		return 0, errors.NewDatabaseError("failed to clean up progress", res.Error)
	}
	if res.RowsAffected > 0 {
		s.logger.Debug("expired progress records removed", map[string]interface{}{
			"count": res.RowsAffected,
		})
	}
	return res.RowsAffected, nil
}

// RunCleanupLoop deletes expired progress records every interval until ctx is
// done. Intended to run in its own goroutine.
func (s *Store) RunCleanupLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.CleanupExpired(ctx); err != nil {
				s.logger.Warn("progress cleanup failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

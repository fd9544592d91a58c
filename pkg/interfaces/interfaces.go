// Package interfaces defines the core interfaces for TubeDigest
package interfaces

import (
	"context"

	"github.com/tubedigest/tubedigest/pkg/types"
)

// Extractor converts a raw summary document into typed records
type Extractor interface {
	// ExtractDocument parses raw markdown into an ExtractionResult.
	// fallback may be nil; it never returns an error, malformed input
	// degrades to fewer records.
	ExtractDocument(raw string, fallback *types.PartialInput) *types.ExtractionResult

	// IsSummary reports whether content looks like a pipeline-formatted summary
	IsSummary(content string) bool
}

// SummaryStore persists extraction results keyed by document hash
type SummaryStore interface {
	// SaveResult stores the result under the document's content hash
	SaveResult(ctx context.Context, docHash string, result *types.ExtractionResult) error

	// GetResult retrieves a previously stored result, or a not-found error
	GetResult(ctx context.Context, docHash string) (*types.ExtractionResult, error)

	// Close releases the underlying database handle
	Close() error
}

// ProgressStore tracks the state of in-flight summarization tasks
type ProgressStore interface {
	// SetProgress stores or replaces the progress record for a task
	SetProgress(ctx context.Context, taskID string, data map[string]interface{}) error

	// GetProgress retrieves progress for a task; expired records are not returned
	GetProgress(ctx context.Context, taskID string) (map[string]interface{}, error)

	// CleanupExpired removes expired progress records and returns the count
	CleanupExpired(ctx context.Context) (int64, error)
}

// SummarySource fetches finished summary documents from the upstream pipeline
type SummarySource interface {
	// FetchSummary retrieves the raw markdown summary for a video URL,
	// polling until the upstream flow completes or ctx is done
	FetchSummary(ctx context.Context, videoURL string) (string, error)

	// IsAvailable reports whether the source is configured and reachable
	IsAvailable() bool
}

// Logger defines the interface for logging
type Logger interface {
	// Debug logs debug level messages
	Debug(msg string, fields ...map[string]interface{})

	// Info logs info level messages
	Info(msg string, fields ...map[string]interface{})

	// Warn logs warning level messages
	Warn(msg string, fields ...map[string]interface{})

	// Error logs error level messages
	Error(msg string, err error, fields ...map[string]interface{})

	// Fatal logs fatal level messages and exits
	Fatal(msg string, err error, fields ...map[string]interface{})

	// WithFields returns a logger with additional fields
	WithFields(fields map[string]interface{}) Logger
}

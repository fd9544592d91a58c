package api

import "github.com/tubedigest/tubedigest/pkg/types"

// BaseResponse represents the base structure for all API responses
type BaseResponse[T any] struct {
	Code    int    `json:"code" example:"200"`
	Message string `json:"message" example:"Operation successful"`
	Data    *T     `json:"data,omitempty"`
}

// SimpleResponse for operations without data return
type SimpleResponse = BaseResponse[interface{}]

// ExtractRequest asks for extraction of a raw markdown summary document.
// PartialInput optionally carries structured values already known to the
// caller; non-empty fields win over anything derived from the markdown.
type ExtractRequest struct {
	Document     string              `json:"document" binding:"required"`
	PartialInput *types.PartialInput `json:"partial_input,omitempty"`
	Persist      bool                `json:"persist,omitempty"`
}

// ExtractResponse carries the extraction result plus derived metadata
type ExtractResponse struct {
	DocHash   string                  `json:"doc_hash"`
	IsSummary bool                    `json:"is_summary"`
	KeyPoints []string                `json:"key_points"`
	Result    *types.ExtractionResult `json:"result"`
}

// SummarizeRequest starts an asynchronous summarize-and-extract task for a
// video URL
type SummarizeRequest struct {
	VideoURL string `json:"video_url" binding:"required,url"`
}

// SummarizeResponse returns the task handle for progress polling
type SummarizeResponse struct {
	TaskID string `json:"task_id"`
}

// ProgressResponse reports the state of an in-flight task
type ProgressResponse struct {
	TaskID string                 `json:"task_id"`
	Data   map[string]interface{} `json:"data"`
}

// HealthResponse reports service liveness and dependency availability
type HealthResponse struct {
	Status           string `json:"status" example:"healthy"`
	Version          string `json:"version" example:"1.0.0"`
	UpstreamReady    bool   `json:"upstream_ready"`
	TimestampSeconds int64  `json:"timestamp"`
}

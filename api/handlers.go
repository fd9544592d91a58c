package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tubedigest/tubedigest/pkg/errors"
	"github.com/tubedigest/tubedigest/pkg/extract"
	"github.com/tubedigest/tubedigest/pkg/store"
	"github.com/tubedigest/tubedigest/pkg/types"
)

// summarizeTimeout bounds one background summarize-and-extract task
const summarizeTimeout = 10 * time.Minute

// healthCheck reports service liveness
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:           "healthy",
		Version:          "1.0.0",
		UpstreamReady:    s.source != nil && s.source.IsAvailable(),
		TimestampSeconds: time.Now().Unix(),
	})
}

// handleExtract runs the extraction engine over a caller-supplied document
func (s *Server) handleExtract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, errors.NewInvalidInputError(err.Error()))
		return
	}

	result := s.engine.ExtractDocument(req.Document, req.PartialInput)
	docHash := store.HashDocument(req.Document)

	if req.Persist {
		if err := s.summaries.SaveResult(c.Request.Context(), docHash, result); err != nil {
			s.respondError(c, err)
			return
		}
	}

	data := ExtractResponse{
		DocHash:   docHash,
		IsSummary: s.engine.IsSummary(req.Document),
		KeyPoints: extract.KeyPoints(result),
		Result:    result,
	}
	c.JSON(http.StatusOK, BaseResponse[ExtractResponse]{
		Code:    http.StatusOK,
		Message: "Document extracted successfully",
		Data:    &data,
	})
}

// handleGetSummary returns a previously persisted extraction result
func (s *Server) handleGetSummary(c *gin.Context) {
	docHash := c.Param("hash")
	if len(docHash) != 64 {
		s.respondError(c, errors.NewInvalidInputError("hash must be a 64 character hex digest"))
		return
	}

	result, err := s.summaries.GetResult(c.Request.Context(), docHash)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, BaseResponse[types.ExtractionResult]{
		Code:    http.StatusOK,
		Message: "Summary retrieved successfully",
		Data:    result,
	})
}

// handleSummarize starts a background task that fetches the summary for a
// video URL from the upstream pipeline, extracts it and persists the result.
// Progress is tracked under the returned task id.
func (s *Server) handleSummarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, errors.NewInvalidInputError(err.Error()))
		return
	}

	if s.source == nil || !s.source.IsAvailable() {
		s.respondError(c, errors.NewUpstreamUnavailableError())
		return
	}

	taskID := uuid.New().String()
	s.setProgress(c.Request.Context(), taskID, map[string]interface{}{
		"status":    "queued",
		"video_url": req.VideoURL,
	})

	go s.runSummarizeTask(taskID, req.VideoURL)

	c.JSON(http.StatusAccepted, BaseResponse[SummarizeResponse]{
		Code:    http.StatusAccepted,
		Message: "Summarization started",
		Data:    &SummarizeResponse{TaskID: taskID},
	})
}

// runSummarizeTask drives one summarize-and-extract task to completion
func (s *Server) runSummarizeTask(taskID, videoURL string) {
	ctx, cancel := context.WithTimeout(context.Background(), summarizeTimeout)
	defer cancel()

	s.setProgress(ctx, taskID, map[string]interface{}{
		"status":    "fetching",
		"video_url": videoURL,
	})

	raw, err := s.source.FetchSummary(ctx, videoURL)
	if err != nil {
		s.logger.Error("summary fetch failed", err, map[string]interface{}{
			"task_id":   taskID,
			"video_url": videoURL,
		})
		s.setProgress(ctx, taskID, map[string]interface{}{
			"status": "failed",
			"error":  err.Error(),
		})
		return
	}

	s.setProgress(ctx, taskID, map[string]interface{}{
		"status": "extracting",
	})

	result := s.engine.ExtractDocument(raw, nil)
	docHash := store.HashDocument(raw)

	if err := s.summaries.SaveResult(ctx, docHash, result); err != nil {
		s.logger.Error("result save failed", err, map[string]interface{}{
			"task_id":  taskID,
			"doc_hash": docHash,
		})
		s.setProgress(ctx, taskID, map[string]interface{}{
			"status": "failed",
			"error":  err.Error(),
		})
		return
	}

	s.setProgress(ctx, taskID, map[string]interface{}{
		"status":   "done",
		"doc_hash": docHash,
		"title":    result.VideoContext.Title,
	})
}

// setProgress records progress in the store and mirrors it to redis
func (s *Server) setProgress(ctx context.Context, taskID string, data map[string]interface{}) {
	if err := s.progress.SetProgress(ctx, taskID, data); err != nil {
		s.logger.Warn("progress update failed", map[string]interface{}{
			"task_id": taskID,
			"error":   err.Error(),
		})
	}
	s.publisher.Publish(ctx, taskID, data)
}

// handleGetProgress reports the state of an in-flight task
func (s *Server) handleGetProgress(c *gin.Context) {
	taskID := c.Param("task_id")

	data, err := s.progress.GetProgress(c.Request.Context(), taskID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, BaseResponse[ProgressResponse]{
		Code:    http.StatusOK,
		Message: "Progress retrieved successfully",
		Data:    &ProgressResponse{TaskID: taskID, Data: data},
	})
}

// respondError maps structured errors onto HTTP status codes
func (s *Server) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	if digestErr := errors.GetDigestError(err); digestErr != nil {
		message = digestErr.Message
		switch digestErr.Type {
		case types.ErrorTypeValidation:
			status = http.StatusBadRequest
		case types.ErrorTypeNotFound:
			status = http.StatusNotFound
		case types.ErrorTypeExternal:
			status = http.StatusBadGateway
		}
	}

	c.JSON(status, SimpleResponse{
		Code:    status,
		Message: message,
	})
}

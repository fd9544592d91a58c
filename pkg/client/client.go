// Package client talks to the upstream summarization pipeline. A summary is
// produced by starting a pipeline run for a video URL and polling the run
// until it finishes.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"

	"github.com/tubedigest/tubedigest/pkg/config"
	"github.com/tubedigest/tubedigest/pkg/errors"
	"github.com/tubedigest/tubedigest/pkg/interfaces"
)

// Run states reported by the upstream API.
const (
	runStateRunning = "RUNNING"
	runStateDone    = "DONE"
	runStateFailed  = "FAILED"
)

type startRunRequest struct {
	UserID         string          `json:"user_id"`
	SavedItemID    string          `json:"saved_item_id"`
	PipelineInputs []pipelineInput `json:"pipeline_inputs"`
}

type pipelineInput struct {
	InputName string `json:"input_name"`
	Value     string `json:"value"`
}

type startRunResponse struct {
	RunID string `json:"run_id"`
}

type runStatusResponse struct {
	State   string                 `json:"state"`
	Outputs map[string]interface{} `json:"outputs"`
	Error   string                 `json:"error,omitempty"`
}

// SummaryClient fetches summaries from the upstream pipeline. It implements
// interfaces.SummarySource.
type SummaryClient struct {
	httpClient *resty.Client
	config     *config.UpstreamConfig
	logger     interfaces.Logger
}

// NewSummaryClient creates a client for the configured upstream pipeline.
func NewSummaryClient(cfg *config.UpstreamConfig, logger interfaces.Logger) (*SummaryClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(cfg.BaseURL)
	httpClient.SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	httpClient.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	httpClient.SetHeader("Content-Type", "application/json")
	httpClient.SetHeader("User-Agent", "TubeDigest/1.0")

	return &SummaryClient{
		httpClient: httpClient,
		config:     cfg,
		logger:     logger,
	}, nil
}

// IsAvailable reports whether the client has the credentials it needs.
// Missing credentials are a normal deployment mode, not an error: the API
// then only serves extraction of caller-supplied markdown.
func (c *SummaryClient) IsAvailable() bool {
	return c.config.APIKey != "" && c.config.UserID != "" && c.config.FlowID != ""
}

// FetchSummary starts a pipeline run for videoURL and polls it to completion,
// returning the raw markdown summary.
func (c *SummaryClient) FetchSummary(ctx context.Context, videoURL string) (string, error) {
	if !c.IsAvailable() {
		return "", errors.NewUpstreamUnavailableError()
	}

	runID, err := c.startRun(ctx, videoURL)
	if err != nil {
		return "", err
	}

	c.logger.Info("pipeline run started", map[string]interface{}{
		"run_id":    runID,
		"video_url": videoURL,
	})

	return c.pollRun(ctx, runID)
}

// startRun submits the video URL to the pipeline. Transient failures are
// retried with exponential delay before giving up.
func (c *SummaryClient) startRun(ctx context.Context, videoURL string) (string, error) {
	req := startRunRequest{
		UserID:      c.config.UserID,
		SavedItemID: c.config.FlowID,
		PipelineInputs: []pipelineInput{
			{InputName: "link", Value: videoURL},
		},
	}

	var result startRunResponse
	err := retry.Do(
		func() error {
			resp, err := c.httpClient.R().
				SetContext(ctx).
				SetBody(req).
				SetResult(&result).
				Post("/api/v1/start_pipeline")
			if err != nil {
				return err
			}
			if resp.IsError() {
				return fmt.Errorf("start_pipeline returned %d: %s", resp.StatusCode(), resp.String())
			}
			return nil
		},
		retry.Attempts(uint(c.config.RetryAttempts)),
		retry.Delay(time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.Context(ctx),
	)
	if err != nil {
		return "", errors.NewUpstreamError("failed to start pipeline run", err)
	}
	if result.RunID == "" {
		return "", errors.NewUpstreamError("start_pipeline returned no run id", nil)
	}
	return result.RunID, nil
}

// pollRun polls run status with exponential backoff until the run reaches a
// terminal state or the poll budget is exhausted.
func (c *SummaryClient) pollRun(ctx context.Context, runID string) (string, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = time.Duration(c.config.PollIntervalSeconds) * time.Second
	policy.MaxElapsedTime = time.Duration(c.config.PollMaxElapsedSeconds) * time.Second

	var summary string
	operation := func() error {
		var status runStatusResponse
		resp, err := c.httpClient.R().
			SetContext(ctx).
			SetQueryParam("run_id", runID).
			SetQueryParam("user_id", c.config.UserID).
			SetResult(&status).
			Get("/api/v1/get_pl_run")
		if err != nil {
			return err
		}
		if resp.IsError() {
			return fmt.Errorf("get_pl_run returned %d", resp.StatusCode())
		}

		switch status.State {
		case runStateDone:
			summary = extractSummaryOutput(status.Outputs)
			if summary == "" {
				return backoff.Permanent(fmt.Errorf("run %s finished without summary output", runID))
			}
			return nil
		case runStateFailed:
			return backoff.Permanent(fmt.Errorf("run %s failed: %s", runID, status.Error))
		default:
			return fmt.Errorf("run %s still %s", runID, status.State)
		}
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		if ctx.Err() != nil {
			return "", errors.NewUpstreamTimeoutError(runID)
		}
		return "", errors.NewUpstreamError(fmt.Sprintf("pipeline run %s did not complete", runID), err)
	}

	return summary, nil
}

// Output keys checked, in order, for the summary text. The pipeline has
// renamed its output field more than once.
var summaryOutputKeys = []string{"transcript", "summary", "text", "content", "result", "output"}

// extractSummaryOutput digs the summary text out of the run outputs. The
// value may be a string or a list whose first element is the string.
func extractSummaryOutput(outputs map[string]interface{}) string {
	for _, key := range summaryOutputKeys {
		value, ok := outputs[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case string:
			if v != "" {
				return v
			}
		case []interface{}:
			if len(v) > 0 {
				if s, ok := v[0].(string); ok && s != "" {
					return s
				}
			}
		}
	}
	return ""
}

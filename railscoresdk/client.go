// Package railscoresdk is the official Go client for the RAIL Score API.
//
// The RAIL Score API evaluates text against the Responsible AI Labs
// responsibility dimensions and returns an overall rail score together with
// per-dimension breakdowns. All evaluation happens server-side; this package
// only speaks HTTP.
package railscoresdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Version of the rail-score-sdk client.
const Version = "2.1.0"

// DefaultBaseURL is the hosted RAIL Score API endpoint.
const DefaultBaseURL = "https://api.responsibleailabs.ai/v1"

// Dimensions lists the responsibility dimensions the API scores, in the order
// the service reports them.
var Dimensions = []string{
	"fairness",
	"safety",
	"reliability",
	"transparency",
	"privacy",
	"accountability",
	"inclusivity",
	"user_impact",
}

// RailScoreClient talks to the RAIL Score API.
type RailScoreClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// ScoreRequest is the payload for the /score endpoint.
type ScoreRequest struct {
	Text       string   `json:"text"`
	Dimensions []string `json:"dimensions,omitempty"`
}

// DimensionScore is one dimension's evaluation within a ScoreResult.
type DimensionScore struct {
	Dimension   string  `json:"dimension"`
	Score       float64 `json:"score"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation,omitempty"`
}

// ScoreResult is the API's evaluation of one text.
type ScoreResult struct {
	RailScore  float64          `json:"rail_score"`
	Dimensions []DimensionScore `json:"dimensions"`
	Model      string           `json:"model,omitempty"`
	RequestID  string           `json:"request_id,omitempty"`
}

// HealthStatus is the response from the /health endpoint.
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// APIError is a non-2xx response from the RAIL Score API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("RAIL API error: %d - %s", e.StatusCode, e.Message)
}

// NewClient creates a client for the hosted RAIL Score API.
func NewClient(apiKey string) *RailScoreClient {
	return NewClientWithBaseURL(apiKey, DefaultBaseURL)
}

// NewClientWithBaseURL creates a client against a custom endpoint
// (self-hosted deployments, test servers).
func NewClientWithBaseURL(apiKey, baseURL string) *RailScoreClient {
	return &RailScoreClient{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Score evaluates text across all responsibility dimensions.
func (c *RailScoreClient) Score(ctx context.Context, text string) (*ScoreResult, error) {
	return c.ScoreWithDimensions(ctx, text, nil)
}

// ScoreWithDimensions evaluates text against the given dimensions only.
// An empty dims slice means all dimensions.
func (c *RailScoreClient) ScoreWithDimensions(ctx context.Context, text string, dims []string) (*ScoreResult, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	body, err := json.Marshal(ScoreRequest{Text: text, Dimensions: dims})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/score", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("score request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var result ScoreResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("invalid score response: %w", err)
	}

	return &result, nil
}

// Health checks that the RAIL Score API is reachable and serving.
func (c *RailScoreClient) Health(ctx context.Context) (*HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/health", nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("invalid health response: %w", err)
	}

	return &status, nil
}

func (c *RailScoreClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "rail-score-sdk-go/"+Version)
}

// decodeAPIError turns a non-2xx response into an *APIError, preferring the
// API's own error message when the body carries one.
func decodeAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			msg = payload.Error
		} else {
			msg = payload.Message
		}
	}
	if msg == "" {
		msg = string(body)
	}

	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}

package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// GenerateTimeout bounds one roadmap generation round trip. Text generation
// is slow, so this is well above the usual API timeout.
const GenerateTimeout = 90 * time.Second

// Client talks to the roadmap planner service, the text-generation backend
// that turns a project description plus dates into a structured roadmap.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a planner client for the given base URL. Calls are
// throttled to keep a burst of generation requests from flooding the
// upstream model.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: GenerateTimeout},
		limiter: rate.NewLimiter(rate.Limit(2), 4),
	}
}

// GenerateRequest is the wire request for one roadmap generation. Dates are
// RFC 3339 strings.
type GenerateRequest struct {
	ProjectDescription string `json:"project_description"`
	StartDate          string `json:"start_date"`
	Deadline           string `json:"deadline"`
}

// MilestonePayload is one milestone as returned by the planner.
type MilestonePayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// PhasePayload is one phase as returned by the planner.
type PhasePayload struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Milestones  []MilestonePayload `json:"milestones"`
}

// GenerateResponse is the planner's reply. The payload is validated and
// coerced by the roadmap service before anything is stored.
type GenerateResponse struct {
	OK      bool           `json:"ok"`
	Roadmap []PhasePayload `json:"roadmap"`
}

// Generate performs one generation round trip. There is no retry here: a
// transport failure or bad status is terminal for this attempt and the
// caller decides whether the user retries.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("planner throttle: %w", err)
	}

	b, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/roadmaps/generate", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("planner request failed: %w", err)
	}
	defer resp.Body.Close()

	var out GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("planner decode: %w", err)
	}
	if resp.StatusCode >= 400 || !out.OK {
		return nil, fmt.Errorf("planner error (status %d)", resp.StatusCode)
	}
	return &out, nil
}

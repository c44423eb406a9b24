package ess

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ess-tools/attendance-report-go/internal/domain/profile"
	"github.com/ess-tools/attendance-report-go/internal/domain/report"
)

// Client talks to the upstream employee-self-service portal API. The bearer
// token is supplied per call and forwarded verbatim; the client never mints
// or refreshes tokens.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// APIError represents an upstream ESS API failure.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ess API error [%d]: %s", e.StatusCode, e.Message)
}

type attendanceEnvelope struct {
	Data struct {
		Content []report.UpstreamRecord `json:"content"`
	} `json:"data"`
}

type profileEnvelope struct {
	Data profile.UpstreamProfile `json:"data"`
}

// FetchAttendance retrieves the raw attendance report for the date range.
func (c *Client) FetchAttendance(ctx context.Context, token, fromDate, toDate string, size int) ([]report.UpstreamRecord, error) {
	query := url.Values{}
	query.Set("fromDate", fromDate)
	query.Set("toDate", toDate)
	query.Set("size", strconv.Itoa(size))

	endpoint := c.baseURL + "/employee/attendance/report?" + query.Encode()

	var envelope attendanceEnvelope
	if err := c.getJSON(ctx, endpoint, token, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Content, nil
}

// FetchProfile retrieves the employee's display profile.
func (c *Client) FetchProfile(ctx context.Context, token string) (profile.Profile, error) {
	endpoint := c.baseURL + "/employee/information/profile"

	var envelope profileEnvelope
	if err := c.getJSON(ctx, endpoint, token, &envelope); err != nil {
		return profile.Profile{}, err
	}
	return envelope.Data.ToProfile(), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build ess request: %w", err)
	}
	req.Header.Set("Authorization", token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach ess API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    "upstream fetch failed",
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode ess response: %w", err)
	}
	return nil
}

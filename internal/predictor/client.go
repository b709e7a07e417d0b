// Package predictor queries a remote age prediction service such as agify.io.
package predictor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"agelookup/internal/metrics"
	"agelookup/internal/validation"
)

// ErrPredictionFailed is returned when the service does not yield an age.
var ErrPredictionFailed = errors.New("age prediction failed")

// Client calls the prediction service once per Predict; it never retries.
type Client struct {
	baseURL *url.URL
	client  *http.Client
}

// New creates a client for the service at baseURL.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	if valid, msg := validation.ValidateURL(baseURL); !valid {
		return nil, fmt.Errorf("invalid predictor URL %q: %s", baseURL, msg)
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: u,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

type prediction struct {
	Age json.RawMessage `json:"age"`
}

// Predict asks the service for name's age and returns it in string form.
func (c *Client) Predict(ctx context.Context, name string) (string, error) {
	start := time.Now()
	age, err := c.predict(ctx, name)
	metrics.ObservePredictorRequest(time.Since(start), err)
	return age, err
}

func (c *Client) predict(ctx context.Context, name string) (string, error) {
	u := *c.baseURL
	q := u.Query()
	q.Set("name", name)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w for %s: %v", ErrPredictionFailed, name, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "agelookup/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w for %s: %v", ErrPredictionFailed, name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w for %s, response code: %d", ErrPredictionFailed, name, resp.StatusCode)
	}

	var p prediction
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return "", fmt.Errorf("%w for %s: decode response: %v", ErrPredictionFailed, name, err)
	}

	age := ageString(p.Age)
	if age == "" {
		return "", fmt.Errorf("%w for %s, response code: %d: no age in response", ErrPredictionFailed, name, resp.StatusCode)
	}
	return age, nil
}

// ageString renders a raw JSON age value. Numbers keep their literal form,
// strings are unquoted, and null or missing values yield "".
func ageString(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return s
}

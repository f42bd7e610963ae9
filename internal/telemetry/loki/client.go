// Package loki pushes exported audit events to Grafana Loki.
package loki

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/grezxune/ours-ledger/internal/telemetry"
)

const job = "ours-ledger"

// PushRequest is the Loki v1 push body.
type PushRequest struct {
	Streams []Stream `json:"streams"`
}

// Stream is one label set with its entries. Each value is [unix_nanos, line].
type Stream struct {
	Stream map[string]string `json:"stream"`
	Values [][]string        `json:"values"`
}

var labelSanitize = regexp.MustCompile(`[^a-zA-Z0-9_\-:.]`)

// Client pushes to a single Loki base URL such as http://localhost:3100.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for baseURL. A nil httpClient uses a 10s-timeout default.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("loki: base URL is empty")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: baseURL, http: httpClient}, nil
}

// PushEnvelopeJSON pushes a raw Kafka message value. Unparseable payloads are still pushed with
// the current time so nothing is silently dropped.
func (c *Client) PushEnvelopeJSON(ctx context.Context, raw []byte) error {
	env, err := telemetry.ParseEnvelope(raw)
	if err != nil {
		return c.Push(ctx, time.Now().UTC(), string(raw), map[string]string{"action": "unparsed"})
	}
	ts := env.CreatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return c.Push(ctx, ts, string(raw), map[string]string{
		"action": env.Action,
		"scope":  env.Scope(),
	})
}

// Push sends one line. The job label is always set; other label values are sanitized and
// dropped when empty.
func (c *Client) Push(ctx context.Context, ts time.Time, line string, labels map[string]string) error {
	stream := map[string]string{"job": job}
	for k, v := range labels {
		if clean := labelSanitize.ReplaceAllString(strings.TrimSpace(v), "_"); clean != "" {
			stream[k] = clean
		}
	}
	payload, err := json.Marshal(PushRequest{Streams: []Stream{{
		Stream: stream,
		Values: [][]string{{strconv.FormatInt(ts.UnixNano(), 10), line}},
	}}})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/loki/api/v1/push", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("loki: push: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("loki: push returned %s", resp.Status)
	}
	return nil
}

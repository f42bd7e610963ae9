package loki

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

// captureServer records the last push body.
func captureServer(t *testing.T, status int) (*httptest.Server, *PushRequest) {
	t.Helper()
	got := &PushRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/loki/api/v1/push" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/loki/api/v1/push")
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q, want %q", ct, "application/json")
		}
		if err := json.NewDecoder(r.Body).Decode(got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func TestNewClient_EmptyURL(t *testing.T) {
	if _, err := NewClient("  ", nil); err == nil {
		t.Error("expected error for empty base URL")
	}
}

func TestPushEnvelopeJSON_LabelsFromEnvelope(t *testing.T) {
	srv, got := captureServer(t, http.StatusNoContent)
	c, err := NewClient(srv.URL+"/", nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	raw := []byte(`{"id":"evt-1","entityId":"ent-1","action":"budget.created","createdAt":"2026-02-03T04:05:06Z"}`)
	if err := c.PushEnvelopeJSON(context.Background(), raw); err != nil {
		t.Fatalf("PushEnvelopeJSON: %v", err)
	}
	if len(got.Streams) != 1 {
		t.Fatalf("streams = %d, want 1", len(got.Streams))
	}
	s := got.Streams[0]
	want := map[string]string{"job": "ours-ledger", "action": "budget.created", "scope": "ent-1"}
	for k, v := range want {
		if s.Stream[k] != v {
			t.Errorf("label %s = %q, want %q", k, s.Stream[k], v)
		}
	}
	wantTS := strconv.FormatInt(time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC).UnixNano(), 10)
	if s.Values[0][0] != wantTS {
		t.Errorf("timestamp = %q, want %q", s.Values[0][0], wantTS)
	}
	if s.Values[0][1] != string(raw) {
		t.Errorf("line = %q, want raw payload", s.Values[0][1])
	}
}

func TestPushEnvelopeJSON_Unparseable(t *testing.T) {
	srv, got := captureServer(t, http.StatusNoContent)
	c, _ := NewClient(srv.URL, nil)
	if err := c.PushEnvelopeJSON(context.Background(), []byte("not json")); err != nil {
		t.Fatalf("PushEnvelopeJSON: %v", err)
	}
	if got.Streams[0].Stream["action"] != "unparsed" {
		t.Errorf("action label = %q, want %q", got.Streams[0].Stream["action"], "unparsed")
	}
}

func TestPush_SanitizesAndDropsEmptyLabels(t *testing.T) {
	srv, got := captureServer(t, http.StatusNoContent)
	c, _ := NewClient(srv.URL, nil)
	err := c.Push(context.Background(), time.Now(), "line", map[string]string{
		"scope":  "a b/c",
		"action": "  ",
	})
	if err != nil {
		t.Fatalf("Push: %v", err)
	}
	labels := got.Streams[0].Stream
	if labels["scope"] != "a_b_c" {
		t.Errorf("scope = %q, want %q", labels["scope"], "a_b_c")
	}
	if _, ok := labels["action"]; ok {
		t.Error("blank label should be dropped")
	}
}

func TestPush_Non2xx(t *testing.T) {
	srv, _ := captureServer(t, http.StatusBadRequest)
	c, _ := NewClient(srv.URL, nil)
	if err := c.Push(context.Background(), time.Now(), "line", nil); err == nil {
		t.Error("expected error on 400")
	}
}

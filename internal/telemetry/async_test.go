package telemetry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/grezxune/ours-ledger/internal/audit/domain"
)

// mockExporter records exported events.
type mockExporter struct {
	mu     sync.Mutex
	events []*domain.Event
	err    error
	delay  time.Duration
}

func (m *mockExporter) Export(ctx context.Context, e *domain.Event) error {
	if m.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.delay):
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
	return m.err
}

func (m *mockExporter) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}

func testEvent() *domain.Event {
	return &domain.Event{
		ID:          "evt-1",
		EntityID:    "ent-1",
		ActorUserID: "user-1",
		ActorEmail:  "owner@example.com",
		Action:      domain.Action("budget.income_source_added"),
		Target:      "src-1",
		Metadata:    domain.NewMetadata().Set("entityId", "ent-1").SetInt("amountCents", 5000),
		CreatedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAsync_ExportsToEverySink(t *testing.T) {
	a, b := &mockExporter{}, &mockExporter{err: errors.New("sink down")}
	async := NewAsync(a, nil, b)

	if err := async.Export(context.Background(), testEvent()); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if err := async.Drain(context.Background()); err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if a.count() != 1 || b.count() != 1 {
		t.Errorf("exports = %d, %d, want 1, 1", a.count(), b.count())
	}
}

func TestAsync_CancelledRequestStillExports(t *testing.T) {
	sink := &mockExporter{delay: 10 * time.Millisecond}
	async := NewAsync(sink)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_ = async.Export(ctx, testEvent())
	if err := async.Drain(context.Background()); err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if sink.count() != 1 {
		t.Errorf("exports = %d, want 1", sink.count())
	}
}

func TestAsync_DrainHonoursDeadline(t *testing.T) {
	async := NewAsync(&mockExporter{delay: time.Second})
	_ = async.Export(context.Background(), testEvent())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := async.Drain(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Drain err = %v, want deadline exceeded", err)
	}
}

func TestAsync_NilSafe(t *testing.T) {
	var async *Async
	if err := async.Export(context.Background(), testEvent()); err != nil {
		t.Errorf("nil Export: %v", err)
	}
	if err := NewAsync().Export(context.Background(), nil); err != nil {
		t.Errorf("nil event: %v", err)
	}
	if err := async.Drain(context.Background()); err != nil {
		t.Errorf("nil Drain: %v", err)
	}
}

func TestEnvelope_RoundTripAndScope(t *testing.T) {
	env := NewEnvelope(testEvent())
	if env.Label != "Budget / Income Source Added" {
		t.Errorf("Label = %q, want %q", env.Label, "Budget / Income Source Added")
	}
	raw, err := env.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := ParseEnvelope(raw)
	if err != nil {
		t.Fatalf("ParseEnvelope: %v", err)
	}
	if got.Metadata["amountCents"] != "5000" {
		t.Errorf("amountCents = %q, want %q", got.Metadata["amountCents"], "5000")
	}
	if !got.CreatedAt.Equal(env.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, env.CreatedAt)
	}
	if got.Scope() != "ent-1" {
		t.Errorf("Scope = %q, want %q", got.Scope(), "ent-1")
	}
	if (&Envelope{}).Scope() != "platform" {
		t.Error("empty entity should scope to platform")
	}
}

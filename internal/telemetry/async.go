package telemetry

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/grezxune/ours-ledger/internal/audit/domain"
)

// exportTimeout bounds a single background export.
const exportTimeout = 5 * time.Second

// Async runs wrapped exporters in the background so request handlers never wait on a sink.
// Drain waits for in-flight exports before the process shuts its providers down.
type Async struct {
	exporters []Exporter
	wg        sync.WaitGroup
	timeout   time.Duration
}

// NewAsync wraps exporters. Nil entries are skipped.
func NewAsync(exporters ...Exporter) *Async {
	kept := make([]Exporter, 0, len(exporters))
	for _, exp := range exporters {
		if exp != nil {
			kept = append(kept, exp)
		}
	}
	return &Async{exporters: kept, timeout: exportTimeout}
}

// Export starts one goroutine per sink and returns immediately. The goroutines use a fresh
// context so request cancellation does not abort them.
func (a *Async) Export(_ context.Context, e *domain.Event) error {
	if a == nil || e == nil {
		return nil
	}
	for _, exp := range a.exporters {
		a.wg.Add(1)
		go func(exp Exporter) {
			defer a.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
			defer cancel()
			if err := exp.Export(ctx, e); err != nil {
				log.Printf("telemetry: export %s failed: %v", e.ID, err)
			}
		}(exp)
	}
	return nil
}

// Drain blocks until in-flight exports finish or ctx is done.
func (a *Async) Drain(ctx context.Context) error {
	if a == nil {
		return nil
	}
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

package otel

import (
	"context"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"github.com/grezxune/ours-ledger/internal/audit/domain"
	"github.com/grezxune/ours-ledger/internal/telemetry"
)

// Emitter is the slice of otellog.Logger the exporter needs.
type Emitter interface {
	Emit(ctx context.Context, rec otellog.Record)
}

// LogExporter writes audit events as OTel log records.
type LogExporter struct {
	logger Emitter
}

// NewLogExporter returns an exporter on provider's "ours-ledger.audit" logger. A nil provider
// yields an exporter that drops everything.
func NewLogExporter(provider *sdklog.LoggerProvider) *LogExporter {
	if provider == nil {
		return &LogExporter{}
	}
	return &LogExporter{logger: provider.Logger("ours-ledger.audit")}
}

// NewLogExporterWithLogger is used by tests.
func NewLogExporterWithLogger(l Emitter) *LogExporter {
	return &LogExporter{logger: l}
}

// Export emits one record per event. The body is the JSON envelope.
func (x *LogExporter) Export(ctx context.Context, e *domain.Event) error {
	if x == nil || x.logger == nil || e == nil {
		return nil
	}
	env := telemetry.NewEnvelope(e)
	body, err := env.Marshal()
	if err != nil {
		return err
	}

	rec := otellog.Record{}
	ts := env.CreatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	rec.SetTimestamp(ts)
	rec.SetObservedTimestamp(time.Now().UTC())
	rec.SetSeverity(otellog.SeverityInfo)
	rec.SetEventName(env.Action)
	rec.SetBody(otellog.BytesValue(body))
	rec.AddAttributes(
		otellog.String("audit.event_id", env.ID),
		otellog.String("audit.action", env.Action),
		otellog.String("audit.scope", env.Scope()),
		otellog.String("audit.actor_user_id", env.ActorUserID),
	)
	if env.Target != "" {
		rec.AddAttributes(otellog.String("audit.target", env.Target))
	}
	x.logger.Emit(ctx, rec)
	return nil
}

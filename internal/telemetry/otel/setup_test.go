package otel

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestNewProviders_EmptyEndpointIsLocal(t *testing.T) {
	for _, endpoint := range []string{"", "   "} {
		providers, err := NewProviders(context.Background(), endpoint, "ours-ledger", false)
		if err != nil {
			t.Fatalf("NewProviders(%q): %v", endpoint, err)
		}
		if providers.TracerProvider == nil || providers.MeterProvider == nil || providers.LoggerProvider == nil {
			t.Errorf("NewProviders(%q) left a provider nil", endpoint)
		}
		if err := providers.Shutdown(context.Background()); err != nil {
			t.Errorf("Shutdown: %v", err)
		}
	}
}

func TestNewProviders_InvalidEndpoint(t *testing.T) {
	for _, endpoint := range []string{"://invalid", "http://[invalid", "http://"} {
		if _, err := NewProviders(context.Background(), endpoint, "ours-ledger", false); err == nil {
			t.Errorf("NewProviders(%q) expected error", endpoint)
		}
	}
}

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		name         string
		endpoint     string
		force        bool
		wantTarget   string
		wantInsecure bool
	}{
		{"bare host port", "localhost:4317", false, "localhost:4317", true},
		{"http", "http://collector:4317", false, "collector:4317", true},
		{"https uses tls", "https://collector:4317", false, "collector:4317", false},
		{"https forced insecure", "https://collector:4317", true, "collector:4317", true},
		{"path dropped", "https://collector:4317/v1/traces", false, "collector:4317", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := parseEndpoint(tt.endpoint, tt.force)
			if err != nil {
				t.Fatalf("parseEndpoint: %v", err)
			}
			if c.target != tt.wantTarget {
				t.Errorf("target = %q, want %q", c.target, tt.wantTarget)
			}
			if c.insecure != tt.wantInsecure {
				t.Errorf("insecure = %v, want %v", c.insecure, tt.wantInsecure)
			}
		})
	}
}

func TestNewProviders_ExportersCreatedLazily(t *testing.T) {
	// OTLP gRPC exporters dial lazily, so an unreachable collector still yields providers.
	ctx := context.Background()
	providers, err := NewProviders(ctx, "localhost:1", "ours-ledger", true)
	if err != nil {
		t.Fatalf("NewProviders: %v", err)
	}
	if providers.LoggerProvider == nil {
		t.Error("LoggerProvider should not be nil")
	}
	_ = providers.Shutdown(ctx)
}

func TestSetGlobal_InstallsTracerProvider(t *testing.T) {
	prev := otel.GetTracerProvider()
	defer otel.SetTracerProvider(prev)

	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()
	(&Providers{TracerProvider: tp}).SetGlobal()
	if otel.GetTracerProvider() != tp {
		t.Error("global tracer provider not installed")
	}
}

package health

import (
	"context"
	"errors"
	"testing"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) PingContext(ctx context.Context) error {
	return f.err
}

func statusOf(t *testing.T, c *Checker, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := c.Server().Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		t.Fatalf("Check(%q): %v", service, err)
	}
	return resp.Status
}

func TestChecker(t *testing.T) {
	db := &fakePinger{}
	c := NewChecker(db, "ours.ledger.v1.EntityService")
	if got := statusOf(t, c, ""); got != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Errorf("initial status = %v, want NOT_SERVING", got)
	}

	if !c.Check(context.Background()) {
		t.Fatal("Check = false with a healthy database")
	}
	for _, svc := range []string{"", "ours.ledger.v1.EntityService"} {
		if got := statusOf(t, c, svc); got != healthpb.HealthCheckResponse_SERVING {
			t.Errorf("status(%q) = %v, want SERVING", svc, got)
		}
	}

	db.err = errors.New("connection refused")
	if c.Check(context.Background()) {
		t.Fatal("Check = true with a failing database")
	}
	if got := statusOf(t, c, "ours.ledger.v1.EntityService"); got != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Errorf("status = %v, want NOT_SERVING", got)
	}
}

func TestChecker_NilPingerServes(t *testing.T) {
	c := NewChecker(nil)
	if !c.Check(context.Background()) {
		t.Error("Check = false without a database")
	}
}

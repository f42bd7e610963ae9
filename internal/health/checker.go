// Package health reports readiness through the standard grpc.health.v1 service.
package health

import (
	"context"
	"log"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Checker pings the database and mirrors the result onto a grpc health server for the overall
// service ("") and each named service.
type Checker struct {
	server   *health.Server
	db       Pinger
	services []string
	timeout  time.Duration
	serving  bool
}

// NewChecker returns a Checker. Every service starts NOT_SERVING until the first successful check.
func NewChecker(db Pinger, services ...string) *Checker {
	c := &Checker{
		server:   health.NewServer(),
		db:       db,
		services: append([]string{""}, services...),
		timeout:  2 * time.Second,
	}
	c.set(healthpb.HealthCheckResponse_NOT_SERVING)
	return c
}

// Server returns the grpc health server to register.
func (c *Checker) Server() *health.Server {
	return c.server
}

// Check pings once and updates every service's status. A nil pinger is always serving.
func (c *Checker) Check(ctx context.Context) bool {
	ok := true
	if c.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err := c.db.PingContext(pingCtx)
		cancel()
		if err != nil {
			ok = false
			if c.serving {
				log.Printf("health: database ping failed: %v", err)
			}
		}
	}
	c.serving = ok
	if ok {
		c.set(healthpb.HealthCheckResponse_SERVING)
	} else {
		c.set(healthpb.HealthCheckResponse_NOT_SERVING)
	}
	return ok
}

// Run checks every interval until ctx is done, then marks everything NOT_SERVING.
func (c *Checker) Run(ctx context.Context, interval time.Duration) {
	c.Check(ctx)
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			c.server.Shutdown()
			return
		case <-t.C:
			c.Check(ctx)
		}
	}
}

func (c *Checker) set(s healthpb.HealthCheckResponse_ServingStatus) {
	for _, name := range c.services {
		c.server.SetServingStatus(name, s)
	}
}

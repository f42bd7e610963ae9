package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	ledgerv1 "github.com/grezxune/ours-ledger/api/ledger/v1"
	"github.com/grezxune/ours-ledger/internal/audit"
	"github.com/grezxune/ours-ledger/internal/config"
	"github.com/grezxune/ours-ledger/internal/db"
	"github.com/grezxune/ours-ledger/internal/health"
	"github.com/grezxune/ours-ledger/internal/security"
	"github.com/grezxune/ours-ledger/internal/server"
	"github.com/grezxune/ours-ledger/internal/server/interceptors"
	"github.com/grezxune/ours-ledger/internal/telemetry"
	telemetryotel "github.com/grezxune/ours-ledger/internal/telemetry/otel"
	"github.com/grezxune/ours-ledger/internal/telemetry/producer"
)

const (
	serviceName    = "ours-ledger"
	healthInterval = 10 * time.Second
	drainTimeout   = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	providers, err := telemetryotel.NewProviders(ctx, cfg.OTLPEndpoint, serviceName, cfg.OTLPInsecure)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	providers.SetGlobal()

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	verifier, err := newVerifier(cfg)
	if err != nil {
		log.Fatalf("jwt: %v", err)
	}

	kafka := producer.NewKafkaProducer(cfg.KafkaBrokersList(), cfg.AuditKafkaTopic)
	sinks := []telemetry.Exporter{telemetryotel.NewLogExporter(providers.LoggerProvider)}
	if kafka != nil {
		sinks = append(sinks, kafka)
		log.Printf("audit: exporting to kafka topic %s", cfg.AuditKafkaTopic)
	}
	exports := telemetry.NewAsync(sinks...)

	services := server.NewServices(conn, audit.Exporter(exports))

	checker := health.NewChecker(conn,
		ledgerv1.EntityServiceName,
		ledgerv1.AuditServiceName,
	)
	healthCtx, stopHealth := context.WithCancel(ctx)
	go checker.Run(healthCtx, healthInterval)

	s := server.NewGRPCServer(server.Auth{
		Tokens: verifier,
		Users:  services.Users,
		Roles:  security.NewRoleResolver(cfg.SuperAdminEmailList()),
	})
	server.RegisterServices(s, services.Deps(checker))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	defer lis.Close()

	go func() {
		log.Printf("gRPC server listening on %s", cfg.GRPCAddr)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down gRPC server...")
	stopHealth()
	s.GracefulStop()

	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := exports.Drain(drainCtx); err != nil {
		log.Printf("audit: export drain: %v", err)
	}
	if err := kafka.Close(); err != nil {
		log.Printf("kafka: close: %v", err)
	}
	if err := providers.Shutdown(drainCtx); err != nil {
		log.Printf("telemetry: shutdown: %v", err)
	}
	log.Println("gRPC server stopped")
}

// newVerifier verifies with the public key. Outside production a configured private key is used
// instead, so tokens minted by the seed command verify without a separate public key.
func newVerifier(cfg *config.Config) (interceptors.TokenVerifier, error) {
	if cfg.JWTPrivateKey != "" {
		signer, err := security.ParsePrivateKey(cfg.JWTPrivateKey)
		if err != nil {
			return nil, err
		}
		return security.NewTokenProvider(signer, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTTL())
	}
	pub, err := security.ParsePublicKey(cfg.JWTPublicKey)
	if err != nil {
		return nil, err
	}
	return security.NewVerifier(pub, cfg.JWTIssuer, cfg.JWTAudience)
}

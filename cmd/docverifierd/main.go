package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/finaid-tools/docverifier/gen/proto/docverify/v1"
	"github.com/finaid-tools/docverifier/internal/common"
	"github.com/finaid-tools/docverifier/internal/export"
	"github.com/finaid-tools/docverifier/internal/ingest"
	"github.com/finaid-tools/docverifier/internal/ocr"
	"github.com/finaid-tools/docverifier/internal/pipeline"
	repo "github.com/finaid-tools/docverifier/internal/repository"
	"github.com/finaid-tools/docverifier/internal/scheduler"
	svc "github.com/finaid-tools/docverifier/internal/server"
	"github.com/finaid-tools/docverifier/internal/storage"
	"github.com/finaid-tools/docverifier/internal/verification"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := common.InitDatabase(ctx, cfg, false, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Cleanup()

	docsRepo := repo.NewDocumentRepository(db.Client, logger)
	resultsRepo := repo.NewExtractionResultRepository(db.Client, logger)
	recordsRepo := repo.NewVerificationRepository(db.Client, logger)

	store, err := storage.NewFSStore(cfg.Storage.Root, logger)
	if err != nil {
		logger.Error("failed to open blob store", "root", cfg.Storage.Root, "error", err)
		os.Exit(1)
	}

	// deterministic rule engine; swap in a vendor adapter behind the same
	// interface for production OCR
	engine := ocr.NewValidatingEngine(ocr.NewRuleEngine(logger), logger)

	coordinator := pipeline.NewCoordinator(pipeline.Config{
		ReviewThreshold:         cfg.Pipeline.ReviewThreshold,
		AutoApproveThreshold:    cfg.Pipeline.AutoApproveThreshold,
		ClassificationThreshold: cfg.Pipeline.ClassificationThreshold,
		FieldThreshold:          cfg.Pipeline.FieldThreshold,
		MaxRetries:              cfg.Pipeline.MaxRetries,
		VerificationTTL:         cfg.Pipeline.VerificationTTL,
	}, docsRepo, resultsRepo, recordsRepo, store, engine, logger)

	reviews := verification.NewService(docsRepo, recordsRepo, logger)

	sched := scheduler.New(docsRepo, coordinator, logger,
		scheduler.WithInterval(cfg.Pipeline.PollInterval),
		scheduler.WithWorkers(cfg.Pipeline.Workers),
		scheduler.WithBatchSize(cfg.Pipeline.SchedulerBatchSize()),
		scheduler.WithProcessTimeout(cfg.Pipeline.ProcessTimeout),
		scheduler.WithMaxProcessingDuration(cfg.Pipeline.MaxProcessingDuration),
		scheduler.WithExpirer(reviews),
	)
	go func() {
		if err := sched.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("scheduler exited", "error", err)
		}
	}()

	// gRPC server
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	hs := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	intake := ingest.NewService(store, docsRepo, logger)
	exporter := export.NewService(docsRepo, recordsRepo, logger)

	v1.RegisterIntakeServiceServer(grpcServer, svc.NewIntakeService(intake, docsRepo, logger))
	v1.RegisterVerificationServiceServer(grpcServer, svc.NewVerificationService(
		docsRepo, resultsRepo, recordsRepo, reviews, exporter, logger,
	))

	go func() {
		logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/internal/common"
	"github.com/finaid-tools/docverifier/internal/export"
	"github.com/finaid-tools/docverifier/internal/ingest"
	"github.com/finaid-tools/docverifier/internal/ocr"
	"github.com/finaid-tools/docverifier/internal/pipeline"
	repo "github.com/finaid-tools/docverifier/internal/repository"
	"github.com/finaid-tools/docverifier/internal/storage"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inmem    = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir      = flag.String("dir", "", "directory to ingest documents from (required)")
		out      = flag.String("out", "", "review queue XLSX path (optional, defaults to parent directory)")
		ownerStr = flag.String("owner", "", "owner UUID (optional, a throwaway owner is generated)")
		typeStr  = flag.String("type", "", "declared document type for every file (optional)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "review_queue.xlsx")
	}

	ownerID := uuid.New()
	if *ownerStr != "" {
		parsed, err := uuid.Parse(*ownerStr)
		if err != nil {
			printError("Error: invalid --owner, must be a UUID: %v\n", err)
			os.Exit(1)
		}
		ownerID = parsed
	}
	declared := constants.ParseDocumentType(*typeStr)

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if !*inmem && cfg.Database.DSN == "" {
		printError("Error: DB_URL is required unless --inmem is set\n")
		os.Exit(1)
	}

	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()
	entc := dbResult.Client

	// Wire repositories
	docsRepo := repo.NewDocumentRepository(entc, logger)
	resultsRepo := repo.NewExtractionResultRepository(entc, logger)
	recordsRepo := repo.NewVerificationRepository(entc, logger)

	store, err := storage.NewFSStore(cfg.Storage.Root, logger)
	if err != nil {
		logger.Error("failed to open blob store", "root", cfg.Storage.Root, "error", err)
		os.Exit(1)
	}

	engine := ocr.NewValidatingEngine(ocr.NewRuleEngine(logger), logger)
	coordinator := pipeline.NewCoordinator(pipeline.Config{
		ReviewThreshold:         cfg.Pipeline.ReviewThreshold,
		AutoApproveThreshold:    cfg.Pipeline.AutoApproveThreshold,
		ClassificationThreshold: cfg.Pipeline.ClassificationThreshold,
		FieldThreshold:          cfg.Pipeline.FieldThreshold,
		MaxRetries:              cfg.Pipeline.MaxRetries,
		VerificationTTL:         cfg.Pipeline.VerificationTTL,
	}, docsRepo, resultsRepo, recordsRepo, store, engine, logger)

	// Ingest directory
	intake := ingest.NewService(store, docsRepo, logger)
	logger.Info("starting ingestion", "dir", *dir, "owner_id", ownerID)
	stats, err := intake.UploadDirectory(ctx, ownerID, *dir, declared)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}

	// Drain the queue synchronously. Documents whose retry backoff has not
	// elapsed are left for a later run.
	processed := 0
	failures := 0
	batch := cfg.Pipeline.SchedulerBatchSize()
	for {
		claimable, err := docsRepo.ListClaimable(ctx, time.Now().UTC(), batch)
		if err != nil {
			logger.Error("failed to list claimable documents", "error", err)
			os.Exit(1)
		}
		if len(claimable) == 0 {
			break
		}
		for _, doc := range claimable {
			claimed, err := docsRepo.Claim(ctx, doc.ID, uuid.New(), time.Now().UTC())
			if err != nil || !claimed {
				continue
			}
			if err := coordinator.Process(ctx, doc); err != nil {
				logger.Error("failed to process document", "document_id", doc.ID, "error", err)
				failures++
				continue
			}
			processed++
		}
	}

	// Export the manual review queue
	logger.Info("exporting review queue", "output", *out)
	exporter := export.NewService(docsRepo, recordsRepo, logger)
	xlsxBytes, err := exporter.ReviewQueueXLSX(ctx)
	if err != nil {
		logger.Error("failed to export review queue", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	approved, _ := docsRepo.ListByStatus(ctx, constants.DocumentApproved, 0)
	review, _ := docsRepo.ListByStatus(ctx, constants.DocumentManualReview, 0)
	rejected, _ := docsRepo.ListByStatus(ctx, constants.DocumentRejected, 0)

	logger.Info("batch verification complete",
		"files_ingested", stats.Succeeded,
		"deduplicated", stats.Deduplicated,
		"processed", processed,
		"failures", failures,
		"output_file", *out)

	fmt.Printf("Batch verification complete!\n")
	fmt.Printf("- Files ingested: %d (deduplicated: %d)\n", stats.Succeeded, stats.Deduplicated)
	fmt.Printf("- Documents processed: %d\n", processed)
	fmt.Printf("- Approved: %d\n", len(approved))
	fmt.Printf("- Manual review: %d\n", len(review))
	fmt.Printf("- Rejected: %d\n", len(rejected))
	fmt.Printf("- Review queue: %s\n", *out)
}

// Package pipeline orchestrates one document's pass through classification,
// OCR extraction, field validation, and verification-status derivation.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/internal/classify"
	"github.com/finaid-tools/docverifier/internal/entity"
	"github.com/finaid-tools/docverifier/internal/ocr"
	"github.com/finaid-tools/docverifier/internal/repository"
	"github.com/finaid-tools/docverifier/internal/storage"
	"github.com/finaid-tools/docverifier/internal/validate"
	"github.com/finaid-tools/docverifier/internal/verification"
)

// Config holds thresholds and retry behavior for the coordinator.
type Config struct {
	ReviewThreshold         float32       // default 0.80
	AutoApproveThreshold    float32       // default 0.90
	ClassificationThreshold float32       // default 0.85
	FieldThreshold          float32       // default 0.80
	MaxRetries              int           // default 3
	VerificationTTL         time.Duration // default 90 days
}

func (c *Config) applyDefaults() {
	if c.ReviewThreshold <= 0 {
		c.ReviewThreshold = 0.80
	}
	if c.AutoApproveThreshold <= 0 {
		c.AutoApproveThreshold = 0.90
	}
	if c.ClassificationThreshold <= 0 {
		c.ClassificationThreshold = 0.85
	}
	if c.FieldThreshold <= 0 {
		c.FieldThreshold = 0.80
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	if c.VerificationTTL <= 0 {
		c.VerificationTTL = 90 * 24 * time.Hour
	}
}

// Coordinator executes the per-document pipeline for a claimed document and
// guarantees the document leaves in a well-defined status, never stuck in
// PROCESSING.
type Coordinator struct {
	cfg        Config
	docs       repository.DocumentRepository
	results    repository.ExtractionResultRepository
	records    repository.VerificationRepository
	store      storage.Store
	engine     ocr.Engine
	classifier *classify.Classifier
	logger     *slog.Logger
}

func NewCoordinator(
	cfg Config,
	docs repository.DocumentRepository,
	results repository.ExtractionResultRepository,
	records repository.VerificationRepository,
	store storage.Store,
	engine ocr.Engine,
	logger *slog.Logger,
) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	cfg.applyDefaults()
	return &Coordinator{
		cfg:        cfg,
		docs:       docs,
		results:    results,
		records:    records,
		store:      store,
		engine:     engine,
		classifier: classify.New(logger),
		logger:     logger,
	}
}

// Process runs the full pipeline for one claimed document: classify if the
// declared type is unknown, extract, validate fields, persist the attempt,
// derive the next status, release the claim.
func (c *Coordinator) Process(ctx context.Context, doc entity.Document) error {
	data, err := c.store.Download(ctx, doc.StoragePath)
	if err != nil {
		return c.handleFailure(ctx, doc, fmt.Sprintf("download document bytes: %v", err))
	}

	expected := doc.DeclaredType
	clsConfidence := float32(1.0) // owner-declared types are taken at face value
	if expected == constants.TypeUnknown {
		cls := c.classifier.Classify(string(data))
		expected = cls.DocumentType
		clsConfidence = cls.Confidence
		if err := c.docs.SetClassifiedType(ctx, doc.ID, expected); err != nil {
			return c.handleFailure(ctx, doc, fmt.Sprintf("persist classified type: %v", err))
		}
		c.logger.Info("coordinator.classify.ok",
			"document_id", doc.ID, "type", expected, "confidence", clsConfidence,
		)
	}

	res, err := c.engine.Extract(ctx, data, expected)
	if err != nil {
		return c.handleFailure(ctx, doc, fmt.Sprintf("ocr extract: %v", err))
	}
	if res.Status == constants.ResultFailed {
		reason := res.FailureReason
		if reason == "" {
			reason = "ocr engine reported failure"
		}
		return c.handleFailure(ctx, doc, reason)
	}

	classified := res.ClassifiedType
	if classified == "" || classified == constants.TypeUnknown {
		classified = expected
	}

	fields := res.Fields
	for i := range fields {
		fields[i].RequiresValidation = fields[i].Confidence == nil || *fields[i].Confidence < c.cfg.FieldThreshold
	}
	validationErrors := validate.Fields(fields)
	overall := entity.MeanConfidence(fields)

	resultStatus := constants.ResultCompleted
	if overall < c.cfg.ReviewThreshold || len(validationErrors) > 0 {
		resultStatus = constants.ResultRequiresReview
	}

	now := time.Now().UTC()
	result := entity.ExtractionResult{
		DocumentID:        doc.ID,
		ClassifiedType:    classified,
		OverallConfidence: overall,
		RawText:           res.RawText,
		Fields:            fields,
		ValidationErrors:  validationErrors,
		Status:            resultStatus,
		ProcessedAt:       now,
	}
	saved, err := c.results.Create(ctx, result)
	if err != nil {
		return c.handleFailure(ctx, doc, fmt.Sprintf("persist extraction result: %v", err))
	}

	c.logger.Info("coordinator.extract.ok",
		"document_id", doc.ID, "result_id", saved.ID,
		"fields", len(fields), "confidence", overall,
		"validation_errors", len(validationErrors),
	)

	docStatus, err := c.deriveStatus(ctx, *saved, clsConfidence, now)
	if err != nil {
		return c.handleFailure(ctx, doc, fmt.Sprintf("derive verification status: %v", err))
	}
	if err := c.docs.MarkCompleted(ctx, doc.ID, docStatus, now); err != nil {
		return err
	}
	return nil
}

// deriveStatus walks the verification state machine for a fresh extraction
// result and returns the resulting document status.
func (c *Coordinator) deriveStatus(ctx context.Context, result entity.ExtractionResult, clsConfidence float32, now time.Time) (constants.DocumentStatus, error) {
	eval := verification.Evaluate(verification.Input{
		Result:                   result,
		ClassificationConfidence: clsConfidence,
	}, verification.Thresholds{
		AutoApprove:    c.cfg.AutoApproveThreshold,
		Review:         c.cfg.ReviewThreshold,
		Classification: c.cfg.ClassificationThreshold,
	})

	state := constants.VerificationPending
	state, err := verification.Transition(state, verification.EventBeginChecks)
	if err != nil {
		return "", err
	}

	autoApprove := eval.AutoApprovable && result.Status == constants.ResultCompleted
	event := verification.EventRequireReview
	if autoApprove {
		event = verification.EventAutoApprove
	}
	state, err = verification.Transition(state, event)
	if err != nil {
		return "", err
	}

	expires := now.Add(c.cfg.VerificationTTL)
	rec := entity.VerificationRecord{
		DocumentID: result.DocumentID,
		Status:     state,
		Score:      eval.Score,
		Checks:     eval.Checks,
		Issues:     eval.Issues,
		Current:    true,
		CreatedAt:  now,
		ExpiresAt:  &expires,
	}
	saved, err := c.records.CreateCurrent(ctx, rec)
	if err != nil {
		return "", err
	}

	if !autoApprove {
		return constants.DocumentManualReview, nil
	}

	// automatic promotion once the AUTO_APPROVED record is persisted
	state, err = verification.Transition(state, verification.EventPromote)
	if err != nil {
		return "", err
	}
	if err := c.records.SetStatus(ctx, saved.ID, state, &now); err != nil {
		return "", err
	}
	c.logger.Info("coordinator.verify.auto_approved", "document_id", result.DocumentID, "score", eval.Score)
	return constants.DocumentApproved, nil
}

// handleFailure applies the retry policy: exponential backoff until the max
// attempt count, then terminal rejection carrying the last error.
func (c *Coordinator) handleFailure(ctx context.Context, doc entity.Document, message string) error {
	now := time.Now().UTC()
	errMsg := &message
	_, rerr := c.results.Create(ctx, entity.ExtractionResult{
		DocumentID:     doc.ID,
		ClassifiedType: doc.DeclaredType,
		Status:         constants.ResultFailed,
		ErrorMessage:   errMsg,
		ProcessedAt:    now,
	})
	if rerr != nil {
		c.logger.Error("failed to record failed attempt", "document_id", doc.ID, "error", rerr)
	}

	retryCount := doc.RetryCount + 1
	if retryCount >= c.cfg.MaxRetries {
		c.logger.Error("coordinator.pipeline.rejected",
			"document_id", doc.ID, "retries", retryCount, "error", message,
		)
		if err := c.docs.MarkRejected(ctx, doc.ID, message); err != nil {
			return err
		}
		return nil
	}

	backoff := time.Duration(1<<retryCount) * time.Minute
	nextRetry := now.Add(backoff)
	c.logger.Warn("coordinator.pipeline.retry",
		"document_id", doc.ID, "retry_count", retryCount,
		"backoff", backoff, "error", message,
	)
	return c.docs.MarkForRetry(ctx, doc.ID, retryCount, nextRetry, message)
}

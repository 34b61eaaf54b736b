// Package scheduler polls for documents awaiting processing and dispatches
// them to a bounded worker pool. The conditional claim write makes it safe to
// run several scheduler instances against the same database.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finaid-tools/docverifier/internal/entity"
	"github.com/finaid-tools/docverifier/internal/repository"
)

// Processor runs the extraction pipeline for one claimed document.
type Processor interface {
	Process(ctx context.Context, doc entity.Document) error
}

// Expirer sweeps overdue verification records; wired to the polling cycle so
// expiry needs no separate daemon.
type Expirer interface {
	ExpireOverdue(ctx context.Context, now time.Time) (int, error)
}

type Scheduler struct {
	docs    repository.DocumentRepository
	proc    Processor
	expirer Expirer
	logger  *slog.Logger

	interval       time.Duration
	workers        int
	batch          int
	processTimeout time.Duration
	maxProcessing  time.Duration

	slots chan struct{}
	wg    sync.WaitGroup
}

type Option func(*Scheduler)

func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

func WithWorkers(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.workers = n
		}
	}
}

func WithBatchSize(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.batch = n
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.processTimeout = d
		}
	}
}

func WithMaxProcessingDuration(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.maxProcessing = d
		}
	}
}

func WithExpirer(e Expirer) Option {
	return func(s *Scheduler) { s.expirer = e }
}

func New(docs repository.DocumentRepository, proc Processor, logger *slog.Logger, opts ...Option) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Scheduler{
		docs:           docs,
		proc:           proc,
		logger:         logger,
		interval:       30 * time.Second,
		workers:        5,
		processTimeout: 3 * time.Minute,
		maxProcessing:  10 * time.Minute,
	}
	for _, o := range opts {
		o(s)
	}
	if s.batch <= 0 {
		s.batch = 2 * s.workers
	}
	s.slots = make(chan struct{}, s.workers)
	return s
}

// Run polls until ctx is cancelled. On shutdown it stops claiming new work
// immediately; in-flight pipelines are cancelled through the same context and
// any claim they leave behind is recovered by the next startup sweep.
func (s *Scheduler) Run(ctx context.Context) error {
	if n, err := s.docs.ReleaseStale(ctx, time.Now().UTC().Add(-s.maxProcessing)); err != nil {
		s.logger.Error("startup stale-claim sweep failed", "error", err)
	} else if n > 0 {
		s.logger.Info("startup sweep released stale claims", "count", n)
	}

	s.logger.Info("scheduler started",
		"interval", s.interval, "workers", s.workers, "batch", s.batch,
	)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.cycle(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopping, waiting for in-flight work")
			s.wg.Wait()
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.cycle(ctx)
		}
	}
}

// cycle claims and dispatches one polling batch. Excess candidates beyond the
// free worker slots stay pending for the next cycle.
func (s *Scheduler) cycle(ctx context.Context) {
	now := time.Now().UTC()

	if s.expirer != nil {
		if _, err := s.expirer.ExpireOverdue(ctx, now); err != nil {
			s.logger.Error("expiry sweep failed", "error", err)
		}
	}

	candidates, err := s.docs.ListClaimable(ctx, now, s.batch)
	if err != nil {
		s.logger.Error("failed to list claimable documents", "error", err)
		return
	}
	for _, doc := range candidates {
		select {
		case <-ctx.Done():
			return
		case s.slots <- struct{}{}:
		default:
			// pool saturated
			return
		}

		token := uuid.New()
		claimed, err := s.docs.Claim(ctx, doc.ID, token, time.Now().UTC())
		if err != nil || !claimed {
			// claim-conflict: another scheduler instance won; move on
			<-s.slots
			if err != nil {
				s.logger.Error("claim failed", "document_id", doc.ID, "error", err)
			}
			continue
		}

		s.wg.Add(1)
		go s.dispatch(ctx, doc, token)
	}
}

func (s *Scheduler) dispatch(ctx context.Context, doc entity.Document, token uuid.UUID) {
	defer s.wg.Done()
	defer func() { <-s.slots }()
	defer func() {
		// one document's panic must not take down the pool
		if r := recover(); r != nil {
			s.logger.Error("worker panic", "document_id", doc.ID, "panic", r)
		}
	}()

	s.logger.Info("document dispatched", "document_id", doc.ID, "job_token", token)
	pctx, cancel := context.WithTimeout(ctx, s.processTimeout)
	defer cancel()

	if err := s.proc.Process(pctx, doc); err != nil {
		s.logger.Error("processing failed", "document_id", doc.ID, "error", err)
		return
	}
	s.logger.Info("processing finished", "document_id", doc.ID)
}

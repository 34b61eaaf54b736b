package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/internal/entity"
	"github.com/finaid-tools/docverifier/internal/repository"
)

// queueRepo is an in-memory DocumentRepository covering only the scheduler's
// surface: listing, claiming, and the stale-claim sweep.
type queueRepo struct {
	repository.DocumentRepository

	mu           sync.Mutex
	docs         map[uuid.UUID]*entity.Document
	staleCutoffs []time.Time
}

func newQueueRepo(docs ...entity.Document) *queueRepo {
	r := &queueRepo{docs: make(map[uuid.UUID]*entity.Document)}
	for i := range docs {
		d := docs[i]
		r.docs[d.ID] = &d
	}
	return r
}

func (r *queueRepo) ListClaimable(_ context.Context, now time.Time, limit int) ([]entity.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Document
	for _, d := range r.docs {
		if d.Status != constants.DocumentUploaded || d.JobToken != nil {
			continue
		}
		if d.NextRetryAt != nil && d.NextRetryAt.After(now) {
			continue
		}
		out = append(out, *d)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *queueRepo) Claim(_ context.Context, id, token uuid.UUID, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.docs[id]
	if !ok || d.Status != constants.DocumentUploaded || d.JobToken != nil {
		return false, nil
	}
	d.JobToken = &token
	d.Status = constants.DocumentProcessing
	d.ProcessingStartedAt = &now
	return true, nil
}

func (r *queueRepo) ReleaseStale(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staleCutoffs = append(r.staleCutoffs, cutoff)
	n := 0
	for _, d := range r.docs {
		if d.Status == constants.DocumentProcessing && d.ProcessingStartedAt != nil && d.ProcessingStartedAt.Before(cutoff) {
			d.Status = constants.DocumentUploaded
			d.JobToken = nil
			d.ProcessingStartedAt = nil
			n++
		}
	}
	return n, nil
}

func (r *queueRepo) finish(id uuid.UUID, status constants.DocumentStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := r.docs[id]
	d.Status = status
	d.JobToken = nil
}

// countingProcessor tracks per-document invocations and concurrency.
type countingProcessor struct {
	repo *queueRepo

	mu            sync.Mutex
	counts        map[uuid.UUID]int
	inFlight      int
	maxInFlight   int
	block         chan struct{} // non-nil makes Process wait
	ignoreCancel  bool          // wait on block even when ctx is cancelled
	finalStatus   constants.DocumentStatus
	processedOnce chan uuid.UUID
}

func newCountingProcessor(repo *queueRepo) *countingProcessor {
	return &countingProcessor{
		repo:          repo,
		counts:        make(map[uuid.UUID]int),
		finalStatus:   constants.DocumentApproved,
		processedOnce: make(chan uuid.UUID, 128),
	}
}

func (p *countingProcessor) Process(ctx context.Context, doc entity.Document) error {
	p.mu.Lock()
	p.counts[doc.ID]++
	p.inFlight++
	if p.inFlight > p.maxInFlight {
		p.maxInFlight = p.inFlight
	}
	block := p.block
	p.mu.Unlock()

	if block != nil {
		if p.ignoreCancel {
			<-block
		} else {
			select {
			case <-block:
			case <-ctx.Done():
			}
		}
	}

	p.repo.finish(doc.ID, p.finalStatus)
	p.mu.Lock()
	p.inFlight--
	p.mu.Unlock()
	p.processedOnce <- doc.ID
	return nil
}

func uploadedDoc() entity.Document {
	return entity.Document{
		ID:         uuid.New(),
		OwnerID:    uuid.New(),
		Status:     constants.DocumentUploaded,
		UploadedAt: time.Now().UTC(),
	}
}

func runFor(t *testing.T, s *Scheduler, d time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	err := s.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRun_ProcessesEveryDocumentExactlyOnce(t *testing.T) {
	docs := make([]entity.Document, 8)
	for i := range docs {
		docs[i] = uploadedDoc()
	}
	repo := newQueueRepo(docs...)
	proc := newCountingProcessor(repo)
	s := New(repo, proc, nil, WithInterval(5*time.Millisecond), WithWorkers(3))

	runFor(t, s, 300*time.Millisecond)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	require.Len(t, proc.counts, len(docs))
	for id, n := range proc.counts {
		assert.Equal(t, 1, n, "document %s processed more than once", id)
	}
}

func TestRun_CompetingSchedulersNeverDoubleClaim(t *testing.T) {
	docs := make([]entity.Document, 12)
	for i := range docs {
		docs[i] = uploadedDoc()
	}
	repo := newQueueRepo(docs...)
	proc := newCountingProcessor(repo)

	// two instances over the same store, as in a multi-replica deployment
	a := New(repo, proc, nil, WithInterval(5*time.Millisecond), WithWorkers(3))
	b := New(repo, proc, nil, WithInterval(5*time.Millisecond), WithWorkers(3))

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); _ = a.Run(ctx) }()
	go func() { defer wg.Done(); _ = b.Run(ctx) }()
	wg.Wait()

	proc.mu.Lock()
	defer proc.mu.Unlock()
	require.Len(t, proc.counts, len(docs))
	for id, n := range proc.counts {
		assert.Equal(t, 1, n, "document %s claimed by both instances", id)
	}
}

func TestRun_TerminalDocumentsAreNeverClaimed(t *testing.T) {
	terminal := []entity.Document{
		{ID: uuid.New(), Status: constants.DocumentApproved},
		{ID: uuid.New(), Status: constants.DocumentRejected},
		{ID: uuid.New(), Status: constants.DocumentExpired},
		{ID: uuid.New(), Status: constants.DocumentManualReview},
	}
	repo := newQueueRepo(terminal...)
	proc := newCountingProcessor(repo)
	s := New(repo, proc, nil, WithInterval(5*time.Millisecond))

	runFor(t, s, 50*time.Millisecond)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.Empty(t, proc.counts)
}

func TestRun_BackoffKeepsRetryingDocumentsOffTheQueue(t *testing.T) {
	waiting := uploadedDoc()
	later := time.Now().UTC().Add(time.Hour)
	waiting.NextRetryAt = &later
	waiting.RetryCount = 1

	ready := uploadedDoc()
	repo := newQueueRepo(waiting, ready)
	proc := newCountingProcessor(repo)
	s := New(repo, proc, nil, WithInterval(5*time.Millisecond))

	runFor(t, s, 50*time.Millisecond)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.Equal(t, 1, proc.counts[ready.ID])
	assert.NotContains(t, proc.counts, waiting.ID)
}

func TestRun_PoolSaturationLeavesExcessPending(t *testing.T) {
	docs := make([]entity.Document, 6)
	for i := range docs {
		docs[i] = uploadedDoc()
	}
	repo := newQueueRepo(docs...)
	proc := newCountingProcessor(repo)
	proc.block = make(chan struct{})
	s := New(repo, proc, nil, WithInterval(5*time.Millisecond), WithWorkers(2))

	done := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = s.Run(ctx)
		close(done)
	}()

	// wait for both workers to fill up
	require.Eventually(t, func() bool {
		proc.mu.Lock()
		defer proc.mu.Unlock()
		return proc.inFlight == 2
	}, time.Second, time.Millisecond)

	// several more polling cycles must not claim past the pool size
	time.Sleep(50 * time.Millisecond)
	proc.mu.Lock()
	assert.Equal(t, 2, proc.maxInFlight)
	assert.Len(t, proc.counts, 2)
	proc.mu.Unlock()

	// release the workers; the backlog drains on subsequent cycles
	close(proc.block)
	for range docs {
		select {
		case <-proc.processedOnce:
		case <-time.After(time.Second):
			t.Fatal("backlog did not drain")
		}
	}
	cancel()
	<-done

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.Equal(t, 2, proc.maxInFlight, "concurrency must stay within the pool size")
	require.Len(t, proc.counts, len(docs))
	for id, n := range proc.counts {
		assert.Equal(t, 1, n, "document %s", id)
	}
}

func TestRun_StartupSweepReleasesStaleClaims(t *testing.T) {
	stale := uploadedDoc()
	stale.Status = constants.DocumentProcessing
	started := time.Now().UTC().Add(-time.Hour)
	stale.ProcessingStartedAt = &started
	token := uuid.New()
	stale.JobToken = &token

	repo := newQueueRepo(stale)
	proc := newCountingProcessor(repo)
	s := New(repo, proc, nil,
		WithInterval(5*time.Millisecond),
		WithMaxProcessingDuration(10*time.Minute),
	)

	runFor(t, s, 50*time.Millisecond)

	repo.mu.Lock()
	require.NotEmpty(t, repo.staleCutoffs)
	repo.mu.Unlock()

	// the released document was picked up as ordinary work
	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.Equal(t, 1, proc.counts[stale.ID])
}

func TestRun_ShutdownWaitsForInFlightWork(t *testing.T) {
	doc := uploadedDoc()
	repo := newQueueRepo(doc)
	proc := newCountingProcessor(repo)
	proc.block = make(chan struct{})
	proc.ignoreCancel = true
	s := New(repo, proc, nil, WithInterval(5*time.Millisecond), WithWorkers(1))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		proc.mu.Lock()
		defer proc.mu.Unlock()
		return proc.inFlight == 1
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
		t.Fatal("Run returned while a worker was still in flight")
	case <-time.After(20 * time.Millisecond):
	}

	close(proc.block)
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after workers finished")
	}

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.Equal(t, 1, proc.counts[doc.ID])
}

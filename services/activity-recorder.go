package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"realty-server/entities"
	"realty-server/events"
	"realty-server/repositories"
)

// publishTimeout bounds how long a flush waits on the event sink.
const publishTimeout = 5 * time.Second

// ActivityRecorder buffers login/logout entries in memory and writes
// them to the activity log in batches. Events for the written entries
// are published after each flush, off the request path.
type ActivityRecorder struct {
	mu        sync.Mutex
	pending   []entities.ActivityLog
	repo      repositories.ActivityRepository
	publisher events.Publisher
	interval  time.Duration
	logger    *slog.Logger
	done      chan struct{}
	wg        sync.WaitGroup
}

func NewActivityRecorder(repo repositories.ActivityRepository, publisher events.Publisher, interval time.Duration) *ActivityRecorder {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &ActivityRecorder{
		repo:      repo,
		publisher: publisher,
		interval:  interval,
		logger:    slog.Default().With("module", "activity"),
		done:      make(chan struct{}),
	}
}

// Start flushes on a ticker until ctx is cancelled or Stop is called.
func (r *ActivityRecorder) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := r.Flush(ctx); err != nil {
					r.logger.Error("flush activity", "error", err)
				}
			case <-ctx.Done():
				return
			case <-r.done:
				return
			}
		}
	}()
}

// Stop ends the ticker loop and writes whatever is still buffered.
func (r *ActivityRecorder) Stop(ctx context.Context) error {
	select {
	case <-r.done:
	default:
		close(r.done)
	}
	r.wg.Wait()
	return r.Flush(ctx)
}

// Record appends an entry to the buffer. It never blocks on storage or
// the event sink.
func (r *ActivityRecorder) Record(_ context.Context, user entities.User, action entities.ActivityAction) {
	entry := entities.ActivityLog{
		UserID:    user.ID,
		Email:     user.Email,
		Action:    action,
		Timestamp: time.Now().UTC(),
	}
	r.mu.Lock()
	r.pending = append(r.pending, entry)
	r.mu.Unlock()
}

// Flush writes the buffered entries in one batch. On failure the
// entries are put back so the next flush retries them.
func (r *ActivityRecorder) Flush(ctx context.Context) error {
	r.mu.Lock()
	batch := r.pending
	r.pending = nil
	r.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}
	if err := r.repo.CreateBatch(ctx, batch); err != nil {
		r.mu.Lock()
		r.pending = append(batch, r.pending...)
		r.mu.Unlock()
		return err
	}
	r.logger.Debug("activity flushed", "entries", len(batch))
	r.publish(ctx, batch)
	return nil
}

func (r *ActivityRecorder) publish(ctx context.Context, batch []entities.ActivityLog) {
	if r.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	for _, entry := range batch {
		if err := events.PublishJSON(ctx, r.publisher, events.TypeActivityRecorded, entry.UserID, entry); err != nil {
			r.logger.Warn("publish activity event", "error", err, "user_id", entry.UserID)
		}
	}
}

// Pending returns how many entries are waiting to be written.
func (r *ActivityRecorder) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

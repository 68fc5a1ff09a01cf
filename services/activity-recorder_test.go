package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"realty-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeActivityRepo struct {
	mu      sync.Mutex
	written []entities.ActivityLog
	fail    error
}

func (f *fakeActivityRepo) CreateBatch(_ context.Context, entries []entities.ActivityLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.written = append(f.written, entries...)
	return nil
}

func (f *fakeActivityRepo) GetRecent(_ context.Context, _ int) ([]entities.ActivityLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entities.ActivityLog(nil), f.written...), nil
}

func (f *fakeActivityRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.written)
}

type countingPublisher struct {
	mu    sync.Mutex
	count int
}

func (p *countingPublisher) Publish(context.Context, string, []byte, string) error {
	p.mu.Lock()
	p.count++
	p.mu.Unlock()
	return nil
}

func (p *countingPublisher) Close() error { return nil }

func (p *countingPublisher) published() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}

// stalledPublisher behaves like an unreachable broker.
type stalledPublisher struct{}

func (stalledPublisher) Publish(ctx context.Context, _ string, _ []byte, _ string) error {
	<-ctx.Done()
	return ctx.Err()
}

func (stalledPublisher) Close() error { return nil }

func TestActivityRecorder_FlushWritesBatch(t *testing.T) {
	repo := &fakeActivityRepo{}
	pub := &countingPublisher{}
	rec := NewActivityRecorder(repo, pub, time.Hour)
	ctx := context.Background()

	user := entities.User{ID: "u1", Email: "a@b.io"}
	rec.Record(ctx, user, entities.ActionLogin)
	rec.Record(ctx, user, entities.ActionLogout)

	assert.Equal(t, 2, rec.Pending())
	assert.Equal(t, 0, repo.count())
	assert.Equal(t, 0, pub.published(), "events go out with the flush")

	require.NoError(t, rec.Flush(ctx))
	assert.Equal(t, 0, rec.Pending())
	assert.Equal(t, 2, repo.count())
	assert.Equal(t, 2, pub.published())
	assert.Equal(t, entities.ActionLogin, repo.written[0].Action)
	assert.Equal(t, "a@b.io", repo.written[0].Email)

	require.NoError(t, rec.Flush(ctx))
	assert.Equal(t, 2, repo.count())
}

func TestActivityRecorder_FailedFlushKeepsEntries(t *testing.T) {
	repo := &fakeActivityRepo{fail: errors.New("db down")}
	rec := NewActivityRecorder(repo, nil, time.Hour)
	ctx := context.Background()

	rec.Record(ctx, entities.User{ID: "u1"}, entities.ActionLogin)
	require.Error(t, rec.Flush(ctx))
	assert.Equal(t, 1, rec.Pending())

	repo.fail = nil
	require.NoError(t, rec.Flush(ctx))
	assert.Equal(t, 0, rec.Pending())
	assert.Equal(t, 1, repo.count())
}

func TestActivityRecorder_RecordDoesNotWaitOnBroker(t *testing.T) {
	repo := &fakeActivityRepo{}
	rec := NewActivityRecorder(repo, stalledPublisher{}, time.Hour)

	start := time.Now()
	rec.Record(context.Background(), entities.User{ID: "u1"}, entities.ActionLogin)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
	assert.Equal(t, 1, rec.Pending())
}

func TestActivityRecorder_FailedFlushPublishesNothing(t *testing.T) {
	repo := &fakeActivityRepo{fail: errors.New("db down")}
	pub := &countingPublisher{}
	rec := NewActivityRecorder(repo, pub, time.Hour)

	rec.Record(context.Background(), entities.User{ID: "u1"}, entities.ActionLogin)
	require.Error(t, rec.Flush(context.Background()))
	assert.Equal(t, 0, pub.published())
}

func TestActivityRecorder_TickerAndStop(t *testing.T) {
	repo := &fakeActivityRepo{}
	rec := NewActivityRecorder(repo, nil, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec.Start(ctx)
	rec.Record(ctx, entities.User{ID: "u1"}, entities.ActionLogin)
	assert.Eventually(t, func() bool { return repo.count() == 1 }, time.Second, 5*time.Millisecond)

	rec.Record(ctx, entities.User{ID: "u2"}, entities.ActionLogout)
	require.NoError(t, rec.Stop(context.Background()))
	assert.Equal(t, 2, repo.count())
	require.NoError(t, rec.Stop(context.Background()))
}

func TestLogMailer(t *testing.T) {
	assert.NoError(t, NewLogMailer(nil).SendPasswordReset(context.Background(), "a@b.io", "tok"))
}

package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOwnerID = "0190c1a4-2b6f-7c3e-9d11-3a5b7c9e1f20"

type fakeRefresher struct {
	mu     sync.Mutex
	calls  int
	owners []string
	todos  []models.Todo
	err    error
}

func (f *fakeRefresher) Refresh(_ context.Context, ownerID string) ([]models.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.owners = append(f.owners, ownerID)
	return f.todos, f.err
}

func (f *fakeRefresher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestCacheRefresher_RefreshesOnTick(t *testing.T) {
	fake := &fakeRefresher{todos: []models.Todo{{ID: "t1", Title: "buy milk"}}}
	results := make(chan []models.Todo, 16)

	r := NewCacheRefresher(fake, testOwnerID, 10*time.Millisecond, func(todos []models.Todo, err error) {
		assert.NoError(t, err)
		select {
		case results <- todos:
		default:
		}
	}, logger.Nop())

	r.Start(context.Background())
	defer r.Stop()

	select {
	case got := <-results:
		assert.Equal(t, fake.todos, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no refresh happened")
	}

	fake.mu.Lock()
	assert.Equal(t, testOwnerID, fake.owners[0])
	fake.mu.Unlock()
}

func TestCacheRefresher_ReportsErrors(t *testing.T) {
	wantErr := errors.New("server unreachable")
	fake := &fakeRefresher{err: wantErr}
	errs := make(chan error, 16)

	r := NewCacheRefresher(fake, testOwnerID, 10*time.Millisecond, func(_ []models.Todo, err error) {
		select {
		case errs <- err:
		default:
		}
	}, logger.Nop())

	r.Start(context.Background())
	defer r.Stop()

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, wantErr)
	case <-time.After(2 * time.Second):
		t.Fatal("no refresh happened")
	}
}

func TestCacheRefresher_StopHaltsTicks(t *testing.T) {
	fake := &fakeRefresher{}
	r := NewCacheRefresher(fake, testOwnerID, 5*time.Millisecond, nil, logger.Nop())

	r.Start(context.Background())
	require.Eventually(t, func() bool { return fake.callCount() > 0 }, 2*time.Second, 5*time.Millisecond)
	r.Stop()

	stopped := fake.callCount()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, fake.callCount())

	// a second Stop is a no-op
	r.Stop()
}

func TestCacheRefresher_ContextCancelStops(t *testing.T) {
	fake := &fakeRefresher{}
	r := NewCacheRefresher(fake, testOwnerID, time.Hour, nil, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		r.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop blocked after context cancel")
	}
	assert.Zero(t, fake.callCount())
}

func TestNewCacheRefresher_DefaultInterval(t *testing.T) {
	r := NewCacheRefresher(&fakeRefresher{}, testOwnerID, 0, nil, logger.Nop())

	assert.Equal(t, DefaultRefreshInterval, r.interval)
}

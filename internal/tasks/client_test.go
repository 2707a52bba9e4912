package tasks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookmarks/internal/config"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(filepath.Join(t.TempDir(), "bookmarks.db"), DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

type echoTask struct {
	Value string `json:"value"`
}

func (echoTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "echo",
		MaxAttempts: 1,
		Backoff:     time.Second,
		Timeout:     5 * time.Second,
	}
}

func TestNewClient_CreatesTasksDatabase(t *testing.T) {
	dir := t.TempDir()

	client, err := NewClient(filepath.Join(dir, "bookmarks.db"), DefaultConfig())
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "bookmarks-tasks.db"))
	assert.NoError(t, err)
	assert.NoError(t, client.Ping(context.Background()))
	assert.NoError(t, client.Close())
}

func TestClient_StopBeforeStart(t *testing.T) {
	client := newTestClient(t)

	assert.True(t, client.Stop(context.Background()))
}

func TestClient_StartStop(t *testing.T) {
	client := newTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Start(ctx)
	assert.Eventually(t, client.started.Load, time.Second, 10*time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()
	assert.True(t, client.Stop(stopCtx))
}

func TestClient_EnqueueRunsTask(t *testing.T) {
	client := newTestClient(t)

	executed := make(chan string, 1)
	client.Register(backlite.NewQueue(func(ctx context.Context, task echoTask) error {
		executed <- task.Value
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Start(ctx)

	id, err := client.Enqueue(ctx, echoTask{Value: "hello"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	select {
	case val := <-executed:
		assert.Equal(t, "hello", val)
	case <-time.After(5 * time.Second):
		t.Fatal("task was not executed within timeout")
	}
}

func TestClient_StatusOfPendingTask(t *testing.T) {
	client := newTestClient(t)
	client.Register(backlite.NewQueue(func(ctx context.Context, task echoTask) error { return nil }))

	id, err := client.Enqueue(context.Background(), echoTask{Value: "later"})
	require.NoError(t, err)

	status, err := client.Status(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, backlite.TaskStatusPending, status)
}

type fakeOptimizer struct {
	calls chan struct{}
	err   error
}

func (f *fakeOptimizer) Optimize(ctx context.Context) error {
	f.calls <- struct{}{}
	return f.err
}

func TestOptimizeDatabaseTaskConfig(t *testing.T) {
	cfg := OptimizeDatabaseTask{}.Config()

	assert.Equal(t, "optimize_database", cfg.Name)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 5*time.Minute, cfg.Backoff)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.NotNil(t, cfg.Retention)
}

func TestOptimizeDatabaseProcessor(t *testing.T) {
	t.Run("calls the optimizer", func(t *testing.T) {
		optimizer := &fakeOptimizer{calls: make(chan struct{}, 1)}
		err := OptimizeDatabaseProcessor(optimizer)(context.Background(), OptimizeDatabaseTask{Reason: "test"})
		require.NoError(t, err)
		assert.Len(t, optimizer.calls, 1)
	})

	t.Run("wraps optimizer errors", func(t *testing.T) {
		optimizer := &fakeOptimizer{calls: make(chan struct{}, 1), err: errors.New("disk I/O error")}
		err := OptimizeDatabaseProcessor(optimizer)(context.Background(), OptimizeDatabaseTask{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "optimize database")
		assert.Contains(t, err.Error(), "disk I/O error")
	})

	t.Run("fails without optimizer", func(t *testing.T) {
		err := OptimizeDatabaseProcessor(nil)(context.Background(), OptimizeDatabaseTask{})
		assert.Error(t, err)
	})
}

func TestOptimizeDatabaseQueue_RunsEnqueuedTask(t *testing.T) {
	client := newTestClient(t)

	optimizer := &fakeOptimizer{calls: make(chan struct{}, 1)}
	client.Register(NewOptimizeDatabaseQueue(optimizer))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Start(ctx)

	_, err := client.Enqueue(ctx, OptimizeDatabaseTask{Reason: "test"})
	require.NoError(t, err)

	select {
	case <-optimizer.calls:
	case <-time.After(5 * time.Second):
		t.Fatal("optimize task was not executed within timeout")
	}
}

func TestDBPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/data/bookmarks.db", "/data/bookmarks-tasks.db"},
		{"/data/bookmarks.sqlite3", "/data/bookmarks-tasks.sqlite3"},
		{"bookmarks", "bookmarks-tasks.db"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DBPath(tt.in))
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, 15*time.Minute, cfg.ReleaseAfter)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
}

func TestFromAppConfig(t *testing.T) {
	cfg := FromAppConfig(config.Tasks{Workers: 4, ReleaseAfter: time.Minute})

	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, time.Minute, cfg.ReleaseAfter)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
}

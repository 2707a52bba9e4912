// Package tasks runs background maintenance jobs on a backlite queue kept in
// its own SQLite file, so queue churn never contends with bookmark writes.
package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/mikestefanello/backlite"
)

// Client owns the queue database and the backlite dispatcher.
type Client struct {
	queue   *backlite.Client
	db      *sql.DB
	workers int
	started atomic.Bool
}

// DBPath returns the task database path for a main database file: the same
// directory and name with a "-tasks" suffix.
func DBPath(mainDBPath string) string {
	base := filepath.Base(mainDBPath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = ".db"
	}
	return filepath.Join(filepath.Dir(mainDBPath), name+"-tasks"+ext)
}

// NewClient opens (creating if needed) the queue database next to
// mainDBPath and installs the backlite schema.
func NewClient(mainDBPath string, cfg Config) (*Client, error) {
	db, err := sql.Open("sqlite3", DBPath(mainDBPath)+"?_journal=WAL&_timeout=5000&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open tasks database: %w", err)
	}
	db.SetMaxOpenConns(cfg.Workers + 5)
	db.SetMaxIdleConns(cfg.Workers + 2)
	db.SetConnMaxLifetime(time.Hour)

	queue, err := backlite.NewClient(backlite.ClientConfig{
		DB:              db,
		NumWorkers:      cfg.Workers,
		ReleaseAfter:    cfg.ReleaseAfter,
		CleanupInterval: cfg.CleanupInterval,
		Logger:          logger{},
	})
	if err == nil {
		err = queue.Install()
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("set up task queue: %w", err)
	}

	return &Client{queue: queue, db: db, workers: cfg.Workers}, nil
}

// Register adds queues; call it before Start.
func (c *Client) Register(queues ...backlite.Queue) {
	for _, q := range queues {
		c.queue.Register(q)
	}
}

// Start launches the workers and returns immediately. Later calls are no-ops.
func (c *Client) Start(ctx context.Context) {
	if !c.started.CompareAndSwap(false, true) {
		return
	}
	log.Printf("[TASK] queue started with %d worker(s)", c.workers)
	c.queue.Start(ctx)
}

// Stop waits for running tasks until ctx expires and reports whether every
// worker finished in time.
func (c *Client) Stop(ctx context.Context) bool {
	if !c.started.Load() {
		return true
	}
	finished := c.queue.Stop(ctx)
	if finished {
		log.Printf("[TASK] queue stopped")
	} else {
		log.Printf("[TASK] queue stopped before all tasks completed")
	}
	return finished
}

// Close releases the queue database. Call it after Stop.
func (c *Client) Close() error {
	return c.db.Close()
}

// Enqueue stores a single task and returns its id.
func (c *Client) Enqueue(ctx context.Context, task backlite.Task) (string, error) {
	ids, err := c.queue.Add(task).Ctx(ctx).Save()
	if err != nil {
		return "", fmt.Errorf("enqueue %s: %w", task.Config().Name, err)
	}
	if len(ids) == 0 {
		return "", errors.New("enqueue: no task id returned")
	}
	return ids[0], nil
}

// Status returns the status of a task by ID.
func (c *Client) Status(ctx context.Context, taskID string) (backlite.TaskStatus, error) {
	return c.queue.Status(ctx, taskID)
}

// Ping checks the queue database.
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

type logger struct{}

func (logger) Info(message string, params ...any) {
	log.Printf("[TASK] "+message, params...)
}

func (logger) Error(message string, params ...any) {
	log.Printf("[TASK ERROR] "+message, params...)
}

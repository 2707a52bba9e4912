package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is the maintenance work run on each tick.
type Job func(ctx context.Context) error

// jobTimeout bounds a single maintenance run.
const jobTimeout = 5 * time.Minute

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ValidateSchedule reports whether schedule is a valid cron expression.
func ValidateSchedule(schedule string) error {
	if _, err := parser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", schedule, err)
	}
	return nil
}

// MaintenanceScheduler runs periodic database maintenance.
type MaintenanceScheduler struct {
	schedule string
	job      Job

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc

	// isWorking is kept outside mu so a job can finish while Stop waits.
	isWorking atomic.Bool
}

// NewMaintenanceScheduler creates a scheduler for job. An empty schedule
// disables it.
func NewMaintenanceScheduler(schedule string, job Job) *MaintenanceScheduler {
	return &MaintenanceScheduler{
		schedule: schedule,
		job:      job,
		cron:     cron.New(cron.WithParser(parser)),
	}
}

// Start begins the scheduler unless the schedule is empty.
func (s *MaintenanceScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if s.schedule == "" {
		log.Printf("Maintenance scheduler: disabled")
		return nil
	}

	if err := ValidateSchedule(s.schedule); err != nil {
		return err
	}

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	entryID, err := s.cron.AddFunc(s.schedule, func() { s.run(cancelCtx) })
	if err != nil {
		s.cancelFunc()
		s.cancelFunc = nil
		return fmt.Errorf("failed to schedule maintenance job: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true

	log.Printf("Maintenance scheduler: started with schedule '%s'. Next run: %v",
		s.schedule, s.cron.Entry(entryID).Next)

	// Monitor for context cancellation
	go func() {
		<-cancelCtx.Done()
		s.Stop(context.Background())
	}()

	return nil
}

// Stop halts the schedule and cancels a job in flight, then waits for it to
// return until ctx is done.
func (s *MaintenanceScheduler) Stop(ctx context.Context) {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	cancel := s.cancelFunc
	s.cancelFunc = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	select {
	case <-s.cron.Stop().Done():
		log.Printf("Maintenance scheduler: stopped")
	case <-ctx.Done():
		log.Printf("Maintenance scheduler: stopped without waiting for the running job: %v", ctx.Err())
	}
}

// IsRunning returns whether the scheduler is active.
func (s *MaintenanceScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the job runs next, or nil when stopped.
func (s *MaintenanceScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	next := s.cron.Entry(s.entryID).Next
	return &next
}

func (s *MaintenanceScheduler) run(parent context.Context) {
	if !s.isWorking.CompareAndSwap(false, true) {
		log.Printf("Maintenance: skipped (already running)")
		return
	}
	defer s.isWorking.Store(false)

	ctx, cancel := context.WithTimeout(parent, jobTimeout)
	defer cancel()

	start := time.Now()
	if err := s.job(ctx); err != nil {
		log.Printf("Maintenance: failed: %v", err)
		return
	}
	log.Printf("Maintenance: completed in %v", time.Since(start).Round(time.Millisecond))
}

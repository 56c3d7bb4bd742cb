// Package scheduler runs recurring jobs such as the daily booking transitions
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ErrJobNotFound is returned when a job cannot be found by name
var ErrJobNotFound = errors.New("job not found")

// Config represents the schedule of a job
type Config struct {
	// Schedule in cron format (e.g. "5 0 * * *" for 00:05 every day)
	Schedule string
	// Enabled determines if the job runs on schedule. Disabled jobs can still be run by name.
	Enabled bool
}

// Job is a unit of scheduled work
type Job interface {
	// Name returns the unique name of the job
	Name() string
	// Run executes the job once
	Run(ctx context.Context) error
}

type entry struct {
	job    Job
	config Config
}

// Manager handles the scheduling and execution of jobs
type Manager struct {
	mu      sync.Mutex
	entries []entry
	running map[string]bool
	cron    *cron.Cron
	log     *zap.Logger
}

// NewManager creates a job manager whose schedules are read in loc
func NewManager(loc *time.Location, log *zap.Logger) *Manager {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithParser(cron.NewParser(cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow)),
	)
	return &Manager{
		cron:    c,
		running: make(map[string]bool),
		log:     log,
	}
}

// ValidateSchedule reports whether spec is a five-field cron expression
func ValidateSchedule(spec string) error {
	_, err := cron.ParseStandard(spec)
	return err
}

// Register adds a job to the manager
func (m *Manager) Register(job Job, cfg Config) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry{job: job, config: cfg})
}

func (m *Manager) lookup(name string) (Job, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.job.Name() == name {
			return e.job, true
		}
	}
	return nil, false
}

// RunJob executes a job by name. Overlapping runs of the same job are skipped.
func (m *Manager) RunJob(ctx context.Context, name string) error {
	job, found := m.lookup(name)
	if !found {
		return ErrJobNotFound
	}
	return m.run(ctx, job)
}

func (m *Manager) run(ctx context.Context, job Job) error {
	m.mu.Lock()
	if m.running[job.Name()] {
		m.mu.Unlock()
		m.log.Warn("job already running, skipping", zap.String("job", job.Name()))
		return nil
	}
	m.running[job.Name()] = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		delete(m.running, job.Name())
		m.mu.Unlock()
	}()

	start := time.Now()
	if err := job.Run(ctx); err != nil {
		m.log.Error("job failed", zap.String("job", job.Name()), zap.Error(err))
		return err
	}
	m.log.Info("job finished", zap.String("job", job.Name()), zap.Duration("took", time.Since(start)))
	return nil
}

// Start schedules every enabled job and blocks until ctx is cancelled
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	entries := append([]entry(nil), m.entries...)
	m.mu.Unlock()

	for _, e := range entries {
		if !e.config.Enabled {
			m.log.Info("job is disabled, skipping scheduler", zap.String("job", e.job.Name()))
			continue
		}
		if e.config.Schedule == "" {
			return fmt.Errorf("job %s has no schedule configured", e.job.Name())
		}

		job := e.job
		_, err := m.cron.AddFunc(e.config.Schedule, func() {
			_ = m.run(ctx, job)
		})
		if err != nil {
			return fmt.Errorf("failed to schedule job %s: %w", job.Name(), err)
		}
		m.log.Info("scheduled job", zap.String("job", job.Name()), zap.String("schedule", e.config.Schedule))
	}

	m.cron.Start()
	m.log.Info("scheduler started")

	<-ctx.Done()
	m.log.Info("stopping scheduler")
	<-m.cron.Stop().Done()
	return nil
}

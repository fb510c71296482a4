package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	_ "time/tzdata"

	"linkpulse/internal/metrics"
	"linkpulse/internal/model"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

var (
	// ErrUnknownJob is returned by Trigger for a key that is not registered
	ErrUnknownJob = errors.New("unknown job")
	// ErrJobRunning is returned by Trigger while the same job is still running
	ErrJobRunning = errors.New("job is already running")
)

// Job is a unit of periodic work
type Job struct {
	Key         string
	Name        string
	Schedule    string
	Description string
	Run         func(ctx context.Context) (interface{}, error)
}

type jobState struct {
	Job
	schedule cron.Schedule
	entryID  cron.EntryID
	running  atomic.Bool

	// guarded by Scheduler.mu
	lastRun      *time.Time
	lastDuration time.Duration
	lastError    string
}

// Scheduler runs the registered jobs on their cron schedules in one time
// zone. A job never overlaps itself.
type Scheduler struct {
	mu       sync.Mutex
	location *time.Location
	timezone string
	jobs     []*jobState
	byKey    map[string]*jobState
	cron     *cron.Cron
	cancel   context.CancelFunc
	state    string
	now      func() time.Time
}

// New creates a scheduler for jobs. Schedules are validated up front; the
// scheduler does not run until Start is called.
func New(timezone string, jobs []Job) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}

	s := &Scheduler{
		location: loc,
		timezone: timezone,
		byKey:    make(map[string]*jobState, len(jobs)),
		state:    model.SchedulerUninitialized,
		now:      time.Now,
	}
	for _, j := range jobs {
		if _, dup := s.byKey[j.Key]; dup {
			return nil, fmt.Errorf("duplicate job key %q", j.Key)
		}
		sched, err := cron.ParseStandard(j.Schedule)
		if err != nil {
			return nil, fmt.Errorf("parse schedule of %s: %w", j.Key, err)
		}
		js := &jobState{Job: j, schedule: sched}
		s.jobs = append(s.jobs, js)
		s.byKey[j.Key] = js
	}
	return s, nil
}

// Start registers every job and starts the cron loop. Calling Start on a
// running scheduler reports the current state and changes nothing.
func (s *Scheduler) Start() model.SchedulerActionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == model.SchedulerRunning {
		return s.result(true, "Scheduler already running")
	}
	if err := s.startLocked(); err != nil {
		log.Error().Err(err).Msg("Failed to start scheduler")
		return s.result(false, err.Error())
	}
	return s.result(true, "Scheduler started")
}

// Stop halts the cron loop and cancels running jobs, waiting for them to
// return. Stopping a scheduler that is not running is a no-op.
func (s *Scheduler) Stop() model.SchedulerActionResult {
	s.mu.Lock()
	if s.state != model.SchedulerRunning {
		defer s.mu.Unlock()
		return s.result(true, "Scheduler is not running")
	}
	done := s.stopLocked()
	s.mu.Unlock()

	<-done.Done()

	s.mu.Lock()
	defer s.mu.Unlock()
	log.Info().Msg("Scheduler stopped")
	return s.result(true, "Scheduler stopped")
}

// Restart stops the scheduler if it is running and registers every job
// again on a fresh cron loop
func (s *Scheduler) Restart() model.SchedulerActionResult {
	s.mu.Lock()
	var done context.Context
	if s.state == model.SchedulerRunning {
		done = s.stopLocked()
	}
	s.mu.Unlock()

	if done != nil {
		<-done.Done()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == model.SchedulerRunning {
		return s.result(false, "Scheduler was started concurrently")
	}
	if err := s.startLocked(); err != nil {
		log.Error().Err(err).Msg("Failed to restart scheduler")
		return s.result(false, err.Error())
	}
	return s.result(true, "Scheduler restarted")
}

func (s *Scheduler) startLocked() error {
	logger := cronLogger{}
	c := cron.New(
		cron.WithLocation(s.location),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	ctx, cancel := context.WithCancel(context.Background())
	for _, js := range s.jobs {
		id, err := c.AddFunc(js.Schedule, func() {
			if _, err := s.execute(ctx, js); errors.Is(err, ErrJobRunning) {
				log.Warn().Str("job", js.Key).Msg("Job still running, skipping scheduled run")
			}
		})
		if err != nil {
			cancel()
			return fmt.Errorf("register %s: %w", js.Key, err)
		}
		js.entryID = id
	}

	c.Start()
	s.cron = c
	s.cancel = cancel
	s.state = model.SchedulerRunning

	log.Info().
		Str("timezone", s.timezone).
		Int("jobs", len(s.jobs)).
		Msg("Scheduler started")
	return nil
}

func (s *Scheduler) stopLocked() context.Context {
	done := s.cron.Stop()
	s.cancel()
	for _, js := range s.jobs {
		js.entryID = 0
	}
	s.cron = nil
	s.cancel = nil
	s.state = model.SchedulerStopped
	return done
}

// State returns the lifecycle state
func (s *Scheduler) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Status returns a snapshot of the scheduler and every job
func (s *Scheduler) Status() *model.SchedulerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().In(s.location)
	status := &model.SchedulerStatus{
		State:     s.state,
		Timezone:  s.timezone,
		TotalJobs: len(s.jobs),
		Jobs:      make([]model.JobStatus, 0, len(s.jobs)),
	}

	for _, js := range s.jobs {
		active := s.state == model.SchedulerRunning && js.entryID != 0
		jobStatus := model.JobStatus{
			Key:         js.Key,
			Name:        js.Name,
			Schedule:    js.Schedule,
			Description: js.Description,
			Timezone:    s.timezone,
			Active:      active,
			Running:     js.running.Load(),
			LastRun:     js.lastRun,
			LastError:   js.lastError,
		}
		if js.lastRun != nil {
			jobStatus.LastDuration = js.lastDuration.String()
		}
		if active {
			next := js.schedule.Next(now)
			jobStatus.NextRun = &next
			status.ActiveJobs++
		}
		status.Jobs = append(status.Jobs, jobStatus)
	}
	return status
}

// Trigger runs a job immediately on the caller's goroutine, whatever the
// scheduler state
func (s *Scheduler) Trigger(ctx context.Context, key string) (*model.TriggerResult, error) {
	s.mu.Lock()
	js, ok := s.byKey[key]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w %q, available jobs: %s", ErrUnknownJob, key, strings.Join(s.JobKeys(), ", "))
	}

	log.Info().Str("job", key).Msg("Manually triggering job")

	started := s.now()
	data, err := s.execute(ctx, js)
	result := &model.TriggerResult{
		Success:  err == nil,
		Job:      key,
		Duration: s.now().Sub(started).String(),
		Data:     data,
	}
	if err != nil {
		result.Error = err.Error()
	}
	return result, err
}

// JobKeys lists the registered job keys in sorted order
func (s *Scheduler) JobKeys() []string {
	keys := make([]string, 0, len(s.jobs))
	for _, js := range s.jobs {
		keys = append(keys, js.Key)
	}
	sort.Strings(keys)
	return keys
}

func (s *Scheduler) execute(ctx context.Context, js *jobState) (interface{}, error) {
	if !js.running.CompareAndSwap(false, true) {
		return nil, ErrJobRunning
	}
	defer js.running.Store(false)

	logger := log.With().Str("job", js.Key).Logger()
	logger.Info().Msgf("Running %s", js.Name)

	started := s.now()
	data, err := js.Run(ctx)
	elapsed := s.now().Sub(started)

	s.mu.Lock()
	js.lastRun = &started
	js.lastDuration = elapsed
	js.lastError = ""
	if err != nil {
		js.lastError = err.Error()
	}
	s.mu.Unlock()

	if err != nil {
		metrics.JobRuns.WithLabelValues(js.Key, "error").Inc()
		logger.Error().Err(err).Dur("elapsed", elapsed).Msgf("%s failed", js.Name)
		return data, err
	}
	metrics.JobRuns.WithLabelValues(js.Key, "success").Inc()
	logger.Info().Dur("elapsed", elapsed).Msgf("%s completed", js.Name)
	return data, nil
}

func (s *Scheduler) result(success bool, message string) model.SchedulerActionResult {
	return model.SchedulerActionResult{
		Success: success,
		Message: message,
		State:   s.state,
		Jobs:    len(s.jobs),
	}
}

// cronLogger routes robfig/cron's logging into zerolog
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}

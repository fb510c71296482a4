package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"linkpulse/internal/config"
	"linkpulse/internal/mocks"
	"linkpulse/internal/model"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(context.Context) (interface{}, error) { return nil, nil }

func testJobs() []Job {
	return []Job{
		{Key: "daily", Name: "Daily", Schedule: "0 1 * * *", Run: noop},
		{Key: "weekly", Name: "Weekly", Schedule: "0 2 * * 0", Run: noop},
		{Key: "frequent", Name: "Frequent", Schedule: "*/30 * * * *", Run: noop},
	}
}

func TestNew(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s, err := New("Asia/Bangkok", testJobs())
		require.NoError(t, err)
		assert.Equal(t, model.SchedulerUninitialized, s.State())
		assert.Equal(t, []string{"daily", "frequent", "weekly"}, s.JobKeys())
	})

	t.Run("invalid timezone", func(t *testing.T) {
		_, err := New("Mars/Olympus", testJobs())
		assert.Error(t, err)
	})

	t.Run("invalid schedule", func(t *testing.T) {
		_, err := New("UTC", []Job{{Key: "bad", Schedule: "every day", Run: noop}})
		assert.ErrorContains(t, err, "bad")
	})

	t.Run("duplicate key", func(t *testing.T) {
		_, err := New("UTC", []Job{
			{Key: "a", Schedule: "@daily", Run: noop},
			{Key: "a", Schedule: "@hourly", Run: noop},
		})
		assert.ErrorContains(t, err, "duplicate")
	})
}

func TestScheduler_Lifecycle(t *testing.T) {
	s, err := New("Asia/Bangkok", testJobs())
	require.NoError(t, err)

	res := s.Start()
	assert.True(t, res.Success)
	assert.Equal(t, model.SchedulerRunning, res.State)
	assert.Equal(t, 3, res.Jobs)

	res = s.Start()
	assert.True(t, res.Success)
	assert.Equal(t, "Scheduler already running", res.Message)
	assert.Equal(t, model.SchedulerRunning, s.State())

	res = s.Stop()
	assert.True(t, res.Success)
	assert.Equal(t, model.SchedulerStopped, res.State)

	res = s.Stop()
	assert.Equal(t, "Scheduler is not running", res.Message)
	assert.Equal(t, model.SchedulerStopped, s.State())

	res = s.Restart()
	assert.True(t, res.Success)
	assert.Equal(t, model.SchedulerRunning, s.State())
	assert.Equal(t, 3, s.Status().ActiveJobs)

	res = s.Restart()
	assert.True(t, res.Success)
	assert.Equal(t, 3, s.Status().ActiveJobs)

	s.Stop()
}

func TestScheduler_Status(t *testing.T) {
	s, err := New("Asia/Bangkok", testJobs())
	require.NoError(t, err)

	bangkok, _ := time.LoadLocation("Asia/Bangkok")
	s.now = func() time.Time { return time.Date(2025, 3, 15, 10, 10, 0, 0, bangkok) } // Saturday

	status := s.Status()
	assert.Equal(t, model.SchedulerUninitialized, status.State)
	assert.Equal(t, 3, status.TotalJobs)
	assert.Equal(t, 0, status.ActiveJobs)
	for _, j := range status.Jobs {
		assert.False(t, j.Active)
		assert.Nil(t, j.NextRun)
	}

	s.Start()
	defer s.Stop()

	status = s.Status()
	assert.Equal(t, "Asia/Bangkok", status.Timezone)
	assert.Equal(t, 3, status.ActiveJobs)

	next := map[string]time.Time{}
	for _, j := range status.Jobs {
		require.NotNil(t, j.NextRun, j.Key)
		assert.Equal(t, "Asia/Bangkok", j.Timezone)
		next[j.Key] = *j.NextRun
	}
	assert.True(t, time.Date(2025, 3, 16, 1, 0, 0, 0, bangkok).Equal(next["daily"]))
	assert.True(t, time.Date(2025, 3, 16, 2, 0, 0, 0, bangkok).Equal(next["weekly"]))
	assert.True(t, time.Date(2025, 3, 15, 10, 30, 0, 0, bangkok).Equal(next["frequent"]))
}

func TestScheduler_Trigger(t *testing.T) {
	t.Run("unknown job lists available jobs", func(t *testing.T) {
		s, err := New("UTC", testJobs())
		require.NoError(t, err)

		result, err := s.Trigger(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrUnknownJob)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "daily, frequent, weekly")
	})

	t.Run("success records last run", func(t *testing.T) {
		s, err := New("UTC", []Job{{
			Key: "daily", Name: "Daily", Schedule: "@daily",
			Run: func(context.Context) (interface{}, error) { return "done", nil },
		}})
		require.NoError(t, err)

		result, err := s.Trigger(context.Background(), "daily")
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "done", result.Data)

		job := s.Status().Jobs[0]
		require.NotNil(t, job.LastRun)
		assert.Empty(t, job.LastError)
		assert.NotEmpty(t, job.LastDuration)
	})

	t.Run("failure records last error", func(t *testing.T) {
		s, err := New("UTC", []Job{{
			Key: "daily", Name: "Daily", Schedule: "@daily",
			Run: func(context.Context) (interface{}, error) { return nil, errors.New("boom") },
		}})
		require.NoError(t, err)

		result, err := s.Trigger(context.Background(), "daily")
		assert.EqualError(t, err, "boom")
		assert.False(t, result.Success)
		assert.Equal(t, "boom", result.Error)
		assert.Equal(t, "boom", s.Status().Jobs[0].LastError)
	})

	t.Run("job does not overlap itself", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		s, err := New("UTC", []Job{{
			Key: "slow", Name: "Slow", Schedule: "@daily",
			Run: func(context.Context) (interface{}, error) {
				close(started)
				<-release
				return nil, nil
			},
		}})
		require.NoError(t, err)

		done := make(chan error)
		go func() {
			_, err := s.Trigger(context.Background(), "slow")
			done <- err
		}()
		<-started

		assert.True(t, s.Status().Jobs[0].Running)
		_, err = s.Trigger(context.Background(), "slow")
		assert.ErrorIs(t, err, ErrJobRunning)

		close(release)
		assert.NoError(t, <-done)
		assert.False(t, s.Status().Jobs[0].Running)
	})
}

func TestDefaultJobs(t *testing.T) {
	cfg := &config.SchedulerConfig{
		Timezone:       "Asia/Bangkok",
		DailyAnalytics: "0 1 * * *",
		WeeklyCleanup:  "0 2 * * 0",
		HealthCheck:    "*/30 * * * *",
		Backfill:       "0 3 * * 1",
		BackfillDays:   7,
	}

	newScheduler := func(t *testing.T, cfg *config.SchedulerConfig) (*Scheduler, *mocks.MockAggregationRunner, *mocks.MockMaintenanceServiceInterface) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		agg := mocks.NewMockAggregationRunner(ctrl)
		maint := mocks.NewMockMaintenanceServiceInterface(ctrl)
		s, err := New(cfg.Timezone, DefaultJobs(cfg, agg, maint))
		require.NoError(t, err)
		return s, agg, maint
	}

	t.Run("registers every configured job", func(t *testing.T) {
		s, _, _ := newScheduler(t, cfg)
		assert.Equal(t, []string{JobAnalyticsBackfill, JobDailyAnalytics, JobHealthCheck, JobWeeklyCleanup}, s.JobKeys())
	})

	t.Run("empty schedule disables job", func(t *testing.T) {
		c := *cfg
		c.Backfill = ""
		s, _, _ := newScheduler(t, &c)
		assert.NotContains(t, s.JobKeys(), JobAnalyticsBackfill)
	})

	t.Run("daily analytics aggregates yesterday", func(t *testing.T) {
		s, agg, _ := newScheduler(t, cfg)
		summary := &model.JobSummary{Success: true}
		agg.EXPECT().Run(gomock.Any(), 1, false).Return(summary, nil)

		result, err := s.Trigger(context.Background(), JobDailyAnalytics)
		require.NoError(t, err)
		assert.Equal(t, summary, result.Data)
	})

	t.Run("backfill covers configured days", func(t *testing.T) {
		s, agg, _ := newScheduler(t, cfg)
		agg.EXPECT().Run(gomock.Any(), 7, false).Return(&model.JobSummary{}, nil)

		_, err := s.Trigger(context.Background(), JobAnalyticsBackfill)
		require.NoError(t, err)
	})

	t.Run("cleanup failure is reported", func(t *testing.T) {
		s, _, maint := newScheduler(t, cfg)
		maint.EXPECT().Cleanup(gomock.Any()).Return(nil, errors.New("lock wait timeout"))

		result, err := s.Trigger(context.Background(), JobWeeklyCleanup)
		assert.Error(t, err)
		assert.False(t, result.Success)
	})

	t.Run("unhealthy system is not an error", func(t *testing.T) {
		s, _, maint := newScheduler(t, cfg)
		maint.EXPECT().HealthCheck(gomock.Any()).Return(&model.HealthReport{Healthy: false, Error: "connection refused"})

		result, err := s.Trigger(context.Background(), JobHealthCheck)
		require.NoError(t, err)
		assert.True(t, result.Success)
	})
}

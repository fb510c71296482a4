package model

import (
	"time"
)

// DateStatus is the outcome of aggregating a single date
type DateStatus string

const (
	DateSkipped   DateStatus = "skipped"
	DateCompleted DateStatus = "completed"
	DateFailed    DateStatus = "failed"
)

// DateResult reports what the aggregation job did for one date
type DateResult struct {
	Date           string     `json:"date"`
	Status         DateStatus `json:"status"`
	Reason         string     `json:"reason,omitempty"`
	Message        string     `json:"message,omitempty"`
	URLsFound      int        `json:"urls_found"`
	URLsProcessed  int        `json:"urls_processed"`
	TotalClicks    int        `json:"total_clicks"`
	ProcessingTime string     `json:"processing_time,omitempty"`
	Error          string     `json:"error,omitempty"`
}

// JobError is a per-link or per-date failure collected during a run
type JobError struct {
	Date   string `json:"date"`
	LinkID int64  `json:"link_id,omitempty"`
	Error  string `json:"error"`
}

// JobPerformance summarises throughput of an aggregation run
type JobPerformance struct {
	AvgTimePerDay    string `json:"avg_time_per_day"`
	RecordsPerSecond int    `json:"records_per_second"`
}

// JobSettings echoes the parameters a run was invoked with
type JobSettings struct {
	DaysBack         int    `json:"days_back"`
	ForceRecalculate bool   `json:"force_recalculate"`
	MaxDaysBack      int    `json:"max_days_back"`
	Timezone         string `json:"timezone"`
}

// JobSummary is the structured result of an aggregation run
type JobSummary struct {
	Success         bool           `json:"success"`
	Message         string         `json:"message"`
	ExecutionTime   string         `json:"execution_time"`
	ProcessedDays   int            `json:"processed_days"`
	TotalURLRecords int            `json:"total_url_records"`
	Results         []DateResult   `json:"results"`
	Errors          []JobError     `json:"errors,omitempty"`
	Performance     JobPerformance `json:"performance"`
	Settings        JobSettings    `json:"settings"`
	CompletedAt     time.Time      `json:"completed_at"`
}

// CleanupReport is the result of the retention sweep
type CleanupReport struct {
	DeletedClicks     int64     `json:"deleted_clicks"`
	DeletedAggregates int64     `json:"deleted_aggregates"`
	ClickCutoff       time.Time `json:"click_cutoff"`
	AggregateCutoff   time.Time `json:"aggregate_cutoff"`
}

// HealthReport is the result of the periodic storage health probe
type HealthReport struct {
	Healthy    bool      `json:"healthy"`
	Links      int64     `json:"links"`
	Clicks     int64     `json:"clicks"`
	Aggregates int64     `json:"aggregates"`
	Error      string    `json:"error,omitempty"`
	CheckedAt  time.Time `json:"checked_at"`
}

// Scheduler lifecycle states
const (
	SchedulerUninitialized = "uninitialized"
	SchedulerRunning       = "running"
	SchedulerStopped       = "stopped"
)

// JobStatus describes one scheduled job
type JobStatus struct {
	Key          string     `json:"key"`
	Name         string     `json:"name"`
	Schedule     string     `json:"schedule"`
	Description  string     `json:"description"`
	Timezone     string     `json:"timezone"`
	Active       bool       `json:"active"`
	Running      bool       `json:"running"`
	LastRun      *time.Time `json:"last_run,omitempty"`
	LastDuration string     `json:"last_duration,omitempty"`
	LastError    string     `json:"last_error,omitempty"`
	NextRun      *time.Time `json:"next_run,omitempty"`
}

// SchedulerStatus is the snapshot returned by the scheduler status API
type SchedulerStatus struct {
	State      string      `json:"state"`
	Timezone   string      `json:"timezone"`
	TotalJobs  int         `json:"total_jobs"`
	ActiveJobs int         `json:"active_jobs"`
	Jobs       []JobStatus `json:"jobs"`
}

// SchedulerActionResult reports a start, stop or restart request
type SchedulerActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	State   string `json:"state"`
	Jobs    int    `json:"jobs"`
}

// TriggerResult reports a manually triggered job run
type TriggerResult struct {
	Success  bool        `json:"success"`
	Job      string      `json:"job"`
	Duration string      `json:"duration"`
	Data     interface{} `json:"data,omitempty"`
	Error    string      `json:"error,omitempty"`
}

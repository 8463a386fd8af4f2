// Package metrics provides Prometheus metrics for the StudyHub API.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studyhub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "studyhub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	TasksCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studyhub_tasks_completed_total",
			Help: "Total number of tasks marked completed",
		},
		[]string{"difficulty"},
	)
	StudyMinutesRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studyhub_study_minutes_total",
			Help: "Total study minutes recorded by timer sessions",
		},
		[]string{"type"},
	)
	RemindersSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "studyhub_reminders_sent_total",
			Help: "Total number of note reminders delivered",
		},
	)
	RemindersFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "studyhub_reminders_failed_total",
			Help: "Total number of note reminders that failed to send",
		},
	)
	ProgressComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studyhub_progress_computations_total",
			Help: "Progress summaries computed, by result",
		},
		[]string{"result"},
	)
)

func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordTaskCompleted(difficulty string) {
	TasksCompleted.WithLabelValues(difficulty).Inc()
}

func RecordStudySession(sessionType string, minutes int) {
	StudyMinutesRecorded.WithLabelValues(sessionType).Add(float64(minutes))
}

func RecordReminder(err error) {
	if err != nil {
		RemindersFailed.Inc()
		return
	}
	RemindersSent.Inc()
}

func RecordProgressComputation(err error) {
	result := "ok"
	if err != nil {
		result = "invalid"
	}
	ProgressComputations.WithLabelValues(result).Inc()
}

// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FormSubmissionsTotal counts accepted generic form submissions per form.
	FormSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "form_submissions_total",
		Help: "Number of form submissions accepted, labelled by form ID.",
	}, []string{"form_id"})

	// FeedbackSubmissionsTotal counts accepted feedback submissions.
	FeedbackSubmissionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feedback_submissions_total",
		Help: "Number of feedback submissions accepted.",
	})

	// SubmissionFailuresTotal counts submissions rejected by storage failures.
	SubmissionFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "form_submission_failures_total",
		Help: "Number of submissions that failed to persist.",
	})
)

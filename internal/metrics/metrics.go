// Package metrics defines Prometheus collectors for the story service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LoginAttempts counts login attempts by outcome (success, failure).
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "story_service_login_attempts_total",
		Help: "Number of login attempts by outcome.",
	}, []string{"outcome"})

	// StoryOperations counts story operations by kind and outcome.
	StoryOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "story_service_story_operations_total",
		Help: "Number of story operations by operation and outcome.",
	}, []string{"operation", "outcome"})
)

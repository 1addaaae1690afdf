package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"task-capture/pkg/nlparser"
)

var (
	parsedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "task_capture",
			Subsystem: "parser",
			Name:      "parsed_total",
			Help:      "Lines parsed, by classified intent.",
		},
		[]string{"intent"},
	)

	parseConfidence = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "task_capture",
			Subsystem: "parser",
			Name:      "confidence",
			Help:      "Confidence score of parsed lines.",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
		},
	)

	processedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "task_capture",
			Subsystem: "tasks",
			Name:      "processed_total",
			Help:      "Lines filed after submit or edit, by intent.",
		},
		[]string{"intent"},
	)

	calendarEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "task_capture",
			Subsystem: "calendar",
			Name:      "events_total",
			Help:      "Google Calendar pushes, by result.",
		},
		[]string{"result"},
	)
)

func observeParse(p nlparser.ParsedInput) {
	parsedTotal.WithLabelValues(p.Intent.String()).Inc()
	parseConfidence.Observe(p.Confidence)
}

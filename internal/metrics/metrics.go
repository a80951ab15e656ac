package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	MatchScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "resume_screener_match_score",
			Help:    "Similarity percentage returned by scoring requests",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 75, 80, 90, 100},
		},
	)

	ProfileStrengthTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_screener_profile_strength_total",
			Help: "Scoring results by profile strength label",
		},
		[]string{"label"},
	)

	GenerationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_screener_generation_failures_total",
			Help: "Text generation calls replaced by a fallback string",
		},
		[]string{"operation"},
	)

	ExtractionFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_screener_extraction_failures_total",
			Help: "Documents that yielded no usable text",
		},
		[]string{"media_type"},
	)

	PipelineDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "resume_screener_pipeline_duration_seconds",
			Help:    "Wall time of scoring and chat requests",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40},
		},
		[]string{"pipeline"},
	)
)

func init() {
	prometheus.MustRegister(
		MatchScore,
		ProfileStrengthTotal,
		GenerationFailures,
		ExtractionFailures,
		PipelineDuration,
	)
}

func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

package observability

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/trnltk/pkg/domain"
)

// Metrics holds the analyzer collectors.
type Metrics struct {
	parses   *prometheus.CounterVec
	duration prometheus.Histogram
	analyses prometheus.Histogram
	cache    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		parses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trnltk_parses_total",
				Help: "Total number of parsed words by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "trnltk_parse_duration_seconds",
				Help:    "Duration of single word parses",
				Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
			},
		),
		analyses: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "trnltk_parse_results",
				Help:    "Number of analyses per parsed word",
				Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
			},
		),
		cache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trnltk_cache_lookups_total",
				Help: "Total number of parse cache lookups by result",
			},
			[]string{"result"},
		),
	}
	for _, c := range []prometheus.Collector{m.parses, m.duration, m.analyses, m.cache} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnParse: func(_ context.Context, e *domain.ParseEvent) {
			switch {
			case e.Err != nil:
				m.parses.WithLabelValues("error").Inc()
				return
			case e.Results == 0:
				m.parses.WithLabelValues("unknown").Inc()
			default:
				m.parses.WithLabelValues("parsed").Inc()
			}
			m.duration.Observe(e.Duration.Seconds())
			m.analyses.Observe(float64(e.Results))
		},
		OnCacheLookup: func(_ context.Context, e *domain.CacheEvent) {
			if e.Hit {
				m.cache.WithLabelValues("hit").Inc()
			} else {
				m.cache.WithLabelValues("miss").Inc()
			}
		},
	}
}

// LogHooks returns lifecycle hooks that write Debug records to logger.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnParse: func(ctx context.Context, e *domain.ParseEvent) {
			if e.Err != nil {
				logger.DebugContext(ctx, "parse failed", "word", e.Word, "err", e.Err)
				return
			}
			logger.DebugContext(ctx, "parse", "word", e.Word, "results", e.Results, "duration", e.Duration)
		},
		OnCacheLookup: func(ctx context.Context, e *domain.CacheEvent) {
			logger.DebugContext(ctx, "cache lookup", "word", e.Word, "hit", e.Hit)
		},
	}
}

package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chronicle_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// FeedCacheHits counts reads of the global feed served from the cache snapshot.
	FeedCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chronicle_feed_cache_hits_total",
		Help: "Global feed reads answered from the cached snapshot",
	})

	// FeedCacheMisses counts reads of the global feed that recomputed from the store.
	FeedCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chronicle_feed_cache_misses_total",
		Help: "Global feed reads recomputed from the entity store",
	})

	// FeedCacheFlushes counts explicit invalidations of the feed snapshot by trigger.
	FeedCacheFlushes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chronicle_feed_cache_flushes_total",
		Help: "Explicit feed cache flushes by triggering write",
	}, []string{"trigger"})
)

// InitMetrics creates the fiberprometheus middleware for HTTP-level metrics.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus handler as app middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}

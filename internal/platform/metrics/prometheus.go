package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultSuccess = "success"
	ResultNoop    = "noop"
	ResultFailure = "failure"
)

// MetricsManager holds the storefront's Prometheus collectors.
type MetricsManager struct {
	Registry           *prometheus.Registry
	MutationsTotal     *prometheus.CounterVec
	StorageErrorsTotal *prometheus.CounterVec
	OrdersPlacedTotal  prometheus.Counter
	HTTPLatency        *prometheus.HistogramVec
}

// NewMetricsManager registers every collector on a private registry so that
// tests can build as many managers as they like.
func NewMetricsManager(serviceName string) *MetricsManager {
	registry := prometheus.NewRegistry()

	mutationsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "line_item_mutations_total",
		Help:      "Cart and wishlist mutations by collection, operation and result.",
	}, []string{"collection", "operation", "result"})

	storageErrorsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "storage_errors_total",
		Help:      "Key-value store errors by collection and kind (read, corrupt, write).",
	}, []string{"collection", "kind"})

	ordersPlacedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "orders_placed_total",
		Help:      "Total number of simulated orders placed.",
	})

	httpLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: serviceName,
		Name:      "http_request_latency_seconds",
		Help:      "Latency of HTTP requests by route pattern and status code.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "status"})

	registry.MustRegister(
		mutationsTotal,
		storageErrorsTotal,
		ordersPlacedTotal,
		httpLatency,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return &MetricsManager{
		Registry:           registry,
		MutationsTotal:     mutationsTotal,
		StorageErrorsTotal: storageErrorsTotal,
		OrdersPlacedTotal:  ordersPlacedTotal,
		HTTPLatency:        httpLatency,
	}
}

// ObserveMutation is safe on a nil manager.
func (m *MetricsManager) ObserveMutation(collection, operation, result string) {
	if m == nil {
		return
	}
	m.MutationsTotal.WithLabelValues(collection, operation, result).Inc()
}

func (m *MetricsManager) ObserveStorageError(collection, kind string) {
	if m == nil {
		return
	}
	m.StorageErrorsTotal.WithLabelValues(collection, kind).Inc()
}

func (m *MetricsManager) ObserveOrderPlaced() {
	if m == nil {
		return
	}
	m.OrdersPlacedTotal.Inc()
}

func (m *MetricsManager) ObserveHTTP(route, method, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPLatency.WithLabelValues(route, method, status).Observe(elapsed.Seconds())
}

// NewMetricsServer returns the HTTP server exposing /metrics, or nil when no
// port is configured.
func NewMetricsServer(port string, registry *prometheus.Registry) *http.Server {
	if port == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// StartMetricsServer blocks serving /metrics until the server is shut down.
func StartMetricsServer(server *http.Server, log logger.Logger) error {
	if server == nil {
		log.Info("Prometheus metrics server port not configured, server will not start")
		return nil
	}
	log.Infof("Prometheus metrics server starting on %s (path /metrics)", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

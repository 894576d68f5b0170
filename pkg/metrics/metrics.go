package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados de una verificación de propiedad.
const (
	OwnershipVerified = "verified"
	OwnershipRejected = "rejected"
	OwnershipError    = "error"
)

var (
	// Registry contiene los collectors propios de la aplicación.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "cuentas",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Peticiones HTTP en curso.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cuentas",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Peticiones HTTP atendidas.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cuentas",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duración de las peticiones HTTP.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms a ~5s
		},
		[]string{"method", "route"},
	)

	ownershipChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cuentas",
			Subsystem: "ownership",
			Name:      "checks_total",
			Help:      "Verificaciones de propiedad negocio/usuario por resultado.",
		},
		[]string{"result"},
	)

	storeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cuentas",
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Duración de las operaciones contra el almacén.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms a ~4s
		},
		[]string{"operation", "success"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		ownershipChecks,
		storeDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler expone los collectors registrados en formato Prometheus.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RequestStarted incrementa el gauge de peticiones en curso y devuelve la función que lo decrementa.
func RequestStarted() func() {
	httpInFlight.Inc()
	return httpInFlight.Dec
}

// RecordRequest registra una petición terminada. route es el patrón de la ruta, no la URL.
func RecordRequest(method, route, status string, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordOwnershipCheck cuenta una verificación de propiedad (ver constantes Ownership*).
func RecordOwnershipCheck(result string) {
	ownershipChecks.WithLabelValues(result).Inc()
}

// RecordStoreOperation registra la duración de una operación de caso de uso contra el almacén.
func RecordStoreOperation(operation string, duration time.Duration, success bool) {
	if duration <= 0 {
		duration = time.Microsecond
	}
	result := "false"
	if success {
		result = "true"
	}
	storeDuration.WithLabelValues(operation, result).Observe(duration.Seconds())
}

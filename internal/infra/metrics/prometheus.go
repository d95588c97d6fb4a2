package metrics

import (
	"net/http"
	"strconv"
	"time"

	"salon-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns a private Prometheus registry so tests can build as many as they like.
type Registry struct {
	reg *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	booked       *prometheus.CounterVec
	statusChange *prometheus.CounterVec
	notified     *prometheus.CounterVec
}

var _ shared.Metrics = (*Registry)(nil)

func New(namespace string) *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		booked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_booked_total",
			Help:      "Appointments booked per branch.",
		}, []string{"branch_id"}),
		statusChange: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointment_status_changes_total",
			Help:      "Appointment transitions by target status.",
		}, []string{"status"}),
		notified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Outbox deliveries by kind and result.",
		}, []string{"kind", "result"}),
	}
	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.httpRequests, r.httpDuration, r.booked, r.statusChange, r.notified,
	)
	return r
}

func (r *Registry) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (r *Registry) AppointmentBooked(branchID uuid.UUID) {
	r.booked.WithLabelValues(branchID.String()).Inc()
}

func (r *Registry) AppointmentStatusChanged(status string) {
	r.statusChange.WithLabelValues(status).Inc()
}

func (r *Registry) NotificationDelivered(kind string, ok bool) {
	result := "sent"
	if !ok {
		result = "failed"
	}
	r.notified.WithLabelValues(kind, result).Inc()
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gympulse_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gympulse_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	RenewalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gympulse_subscription_renewals_total",
			Help: "Total number of subscription renewals",
		},
		[]string{"months"},
	)

	RenewalRevenueTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gympulse_subscription_revenue_total",
			Help: "Sum of renewal amounts charged",
		},
	)

	RecipeWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gympulse_recipe_writes_total",
			Help: "Total number of recipe writes",
		},
		[]string{"op"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gympulse_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gympulse_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gympulse_events_published_total",
			Help: "Total number of broker events published",
		},
		[]string{"routing_key", "status"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordRenewal(months int, amount int64) {
	RenewalsTotal.WithLabelValues(strconv.Itoa(months)).Inc()
	RenewalRevenueTotal.Add(float64(amount))
}

func RecordRecipeWrite(op string) {
	RecipeWritesTotal.WithLabelValues(op).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordEvent(routingKey, status string) {
	EventsPublishedTotal.WithLabelValues(routingKey, status).Inc()
}

package metrics

import (
	"panaderia_api/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder exports the storefront business counters.
type Recorder struct {
	webhooks    *prometheus.CounterVec
	orders      *prometheus.CounterVec
	preferences *prometheus.CounterVec
}

var _ interfaces.IMetricsRecorder = (*Recorder)(nil)

// NewRecorder registers the counters on reg. A nil registerer yields a recorder
// that drops every observation.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		return &Recorder{}
	}
	webhooks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_notifications_total",
		Help: "Payment webhook notifications by reconciliation outcome.",
	}, []string{"outcome"})
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Orders created by payment method.",
	}, []string{"payment_method"})
	preferences := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_preferences_total",
		Help: "Hosted checkout preference requests by result.",
	}, []string{"result"})
	reg.MustRegister(webhooks, orders, preferences)
	return &Recorder{webhooks: webhooks, orders: orders, preferences: preferences}
}

func (r *Recorder) ObserveWebhook(outcome string) {
	if r == nil || r.webhooks == nil {
		return
	}
	r.webhooks.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func (r *Recorder) IncOrderCreated(paymentMethod string) {
	if r == nil || r.orders == nil {
		return
	}
	r.orders.WithLabelValues(normalizeLabel(paymentMethod)).Inc()
}

func (r *Recorder) ObservePreference(result string) {
	if r == nil || r.preferences == nil {
		return
	}
	r.preferences.WithLabelValues(normalizeLabel(result)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

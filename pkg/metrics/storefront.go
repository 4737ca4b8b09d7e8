package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chocozoo/storefront/pkg/enums"
)

// Storefront records cart, checkout and catalog activity.
type Storefront struct {
	cartMutations  *prometheus.CounterVec
	orders         *prometheus.CounterVec
	filterDuration *prometheus.HistogramVec
	sessions       prometheus.Gauge
}

// NewStorefront registers the storefront metrics on reg. A nil registerer
// yields a recorder whose methods do nothing.
func NewStorefront(reg prometheus.Registerer) *Storefront {
	if reg == nil {
		return &Storefront{}
	}
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "cart_mutations_total",
		Help:      "Cart mutations by operation.",
	}, []string{"op"})
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "orders_total",
		Help:      "Order submissions by outcome.",
	}, []string{"status"})
	filterDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "storefront",
		Name:      "filter_duration_seconds",
		Help:      "Time spent filtering the catalog.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .05},
	}, []string{"source"})
	sessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "storefront",
		Name:      "active_sessions",
		Help:      "Shopping sessions currently held in memory.",
	})
	reg.MustRegister(cartMutations, orders, filterDuration, sessions)
	return &Storefront{
		cartMutations:  cartMutations,
		orders:         orders,
		filterDuration: filterDuration,
		sessions:       sessions,
	}
}

// IncCartMutation counts one cart operation.
func (s *Storefront) IncCartMutation(op string) {
	if s == nil || s.cartMutations == nil {
		return
	}
	s.cartMutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// ObserveOrder counts one submission outcome.
func (s *Storefront) ObserveOrder(status enums.OrderStatus) {
	if s == nil || s.orders == nil {
		return
	}
	s.orders.WithLabelValues(normalizeLabel(status.String())).Inc()
}

// ObserveFilter records how long a filter pass took.
func (s *Storefront) ObserveFilter(source string, duration time.Duration) {
	if s == nil || s.filterDuration == nil {
		return
	}
	s.filterDuration.WithLabelValues(normalizeLabel(source)).Observe(duration.Seconds())
}

// SetActiveSessions reports the live session count.
func (s *Storefront) SetActiveSessions(n int) {
	if s == nil || s.sessions == nil {
		return
	}
	s.sessions.Set(float64(n))
}

// Handler exposes the registry in the Prometheus text format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

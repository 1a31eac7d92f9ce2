package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "loyalty"

// Collector owns its registry so several instances can coexist in one process.
type Collector struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	benefitsCreated   prometheus.Counter
	benefitDuplicates prometheus.Counter
	ordersCreated     prometheus.Counter
	ordersClosed      *prometheus.CounterVec
	closeRejections   *prometheus.CounterVec
	pointsRedeemed    prometheus.Counter
	pointsAwarded     prometheus.Counter
	rateChanges       prometheus.Counter
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		benefitsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "benefits_created_total",
			Help:      "Benefits added to the catalog",
		}),
		benefitDuplicates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "benefit_duplicates_rejected_total",
			Help:      "Benefit creations rejected by the fingerprint index",
		}),
		ordersCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Orders opened",
		}),
		ordersClosed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "orders_closed_total",
				Help:      "Orders closed, by applied benefit type",
			},
			[]string{"benefit_type"},
		),
		closeRejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_close_rejections_total",
				Help:      "Order closes rejected by a business rule",
			},
			[]string{"reason"},
		),
		pointsRedeemed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_redeemed_total",
			Help:      "Points spent on benefits",
		}),
		pointsAwarded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_awarded_total",
			Help:      "Points earned on closed orders",
		}),
		rateChanges: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversion_rate_changes_total",
			Help:      "Appends to the conversion rate history",
		}),
	}
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) ObserveHTTP(method, endpoint string, status int, elapsed time.Duration) {
	c.httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	c.httpRequestDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

func (c *Collector) BenefitCreated() {
	c.benefitsCreated.Inc()
}

func (c *Collector) DuplicateBenefitRejected() {
	c.benefitDuplicates.Inc()
}

func (c *Collector) OrderCreated() {
	c.ordersCreated.Inc()
}

// OrderClosed records a committed close. benefitType is empty when no benefit was applied.
func (c *Collector) OrderClosed(benefitType string, redeemed, awarded decimal.Decimal) {
	if benefitType == "" {
		benefitType = "none"
	}
	c.ordersClosed.WithLabelValues(benefitType).Inc()
	c.pointsRedeemed.Add(redeemed.InexactFloat64())
	c.pointsAwarded.Add(awarded.InexactFloat64())
}

func (c *Collector) CloseRejected(reason string) {
	c.closeRejections.WithLabelValues(reason).Inc()
}

func (c *Collector) ConversionRateChanged() {
	c.rateChanges.Inc()
}

package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements Collector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	runCounter      *prometheus.CounterVec
	runDuration     *prometheus.HistogramVec
	bottleneckGauge prometheus.Gauge
	balanceGauge    prometheus.Gauge
	operatorsGauge  prometheus.Gauge
	exportCounter   *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements Collector.
var _ Collector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// reg defaults to prometheus.DefaultRegisterer when nil and namespace
// defaults to "linebalance" when empty.
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "linebalance"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total handled HTTP requests by route and status.",
		}, []string{"route", "status"})

		p.httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of handled HTTP requests in seconds by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"})

		p.runCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "balance",
			Name:      "runs_total",
			Help:      "Total completed balancing runs by time basis.",
		}, []string{"basis"})

		p.runDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "balance",
			Name:      "run_duration_seconds",
			Help:      "Duration of balancing runs in seconds by time basis.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"basis"})

		p.bottleneckGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "balance",
			Name:      "line_bottleneck_seconds",
			Help:      "Slowest operator load of the latest balancing run.",
		})

		p.balanceGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "balance",
			Name:      "line_balance_percent",
			Help:      "Balance percentage of the latest balancing run.",
		})

		p.operatorsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "balance",
			Name:      "operators_current",
			Help:      "Operator headcount of the latest balancing run.",
		})

		p.exportCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "report",
			Name:      "exports_total",
			Help:      "Total worksheet exports by output format.",
		}, []string{"format"})

		p.reg.MustRegister(p.httpRequests)
		p.reg.MustRegister(p.httpDuration)
		p.reg.MustRegister(p.runCounter)
		p.reg.MustRegister(p.runDuration)
		p.reg.MustRegister(p.bottleneckGauge)
		p.reg.MustRegister(p.balanceGauge)
		p.reg.MustRegister(p.operatorsGauge)
		p.reg.MustRegister(p.exportCounter)
	})
}

// RecordHTTPRequest records one handled HTTP request with its outcome.
func (p *PrometheusCollector) RecordHTTPRequest(route string, status int, seconds float64) {
	p.ensureRegistered()
	p.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	p.httpDuration.WithLabelValues(route).Observe(seconds)
}

// RecordBalanceRun records one completed balancing run under the given basis.
func (p *PrometheusCollector) RecordBalanceRun(basis string, seconds float64) {
	p.ensureRegistered()
	p.runCounter.WithLabelValues(basis).Inc()
	p.runDuration.WithLabelValues(basis).Observe(seconds)
}

// SetLineBottleneck sets the slowest operator load of the latest run.
func (p *PrometheusCollector) SetLineBottleneck(seconds float64) {
	p.ensureRegistered()
	p.bottleneckGauge.Set(seconds)
}

// SetLineBalance sets the balance percentage of the latest run.
func (p *PrometheusCollector) SetLineBalance(percent float64) {
	p.ensureRegistered()
	p.balanceGauge.Set(percent)
}

// SetOperators sets the operator headcount of the latest run.
func (p *PrometheusCollector) SetOperators(count int) {
	p.ensureRegistered()
	p.operatorsGauge.Set(float64(count))
}

// IncrementExport counts one worksheet export by format.
func (p *PrometheusCollector) IncrementExport(format string) {
	p.ensureRegistered()
	p.exportCounter.WithLabelValues(format).Inc()
}

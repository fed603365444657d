// Package metrics 提供基于Prometheus的指标收集
//
// 指标分三类：
//   - HTTP：请求总数、耗时、处理中的请求数（由中间件记录）
//   - 业务：结算成功/失败、结算耗时、借阅/归还次数
//   - 存储：集合文件损坏时回退到种子数据的次数、Redis熔断器状态
//
// 使用方式：
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	initOnce sync.Once

	// HTTPRequestsTotal HTTP请求总数
	// 标签：service、method、path（路由模板，不是原始URL）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress *prometheus.GaugeVec

	// CheckoutsTotal 结算次数，标签result=success|failure
	CheckoutsTotal *prometheus.CounterVec

	// CheckoutDuration 结算耗时
	CheckoutDuration prometheus.Histogram

	// LoansTotal 借阅/归还次数，标签action=borrow|return
	LoansTotal *prometheus.CounterVec

	// StoreSeedFallbacksTotal 集合数据无法解析、回退到种子数据的次数
	// 标签：collection
	StoreSeedFallbacksTotal *prometheus.CounterVec

	// StoreBreakerState 存储熔断器状态：0=CLOSED 1=OPEN 2=HALF_OPEN
	// 标签：backend
	StoreBreakerState *prometheus.GaugeVec
)

// InitMetrics 注册所有指标（可重复调用）
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"service", "method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"service", "method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
			[]string{"service"},
		)

		CheckoutsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkouts_total",
				Help: "结算次数",
			},
			[]string{"result"},
		)

		CheckoutDuration = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "checkout_duration_seconds",
				Help:    "结算耗时（秒）",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		)

		LoansTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "library_loans_total",
				Help: "借阅/归还次数",
			},
			[]string{"action"},
		)

		StoreSeedFallbacksTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_seed_fallbacks_total",
				Help: "集合数据损坏时回退到种子数据的次数",
			},
			[]string{"collection"},
		)

		StoreBreakerState = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "store_breaker_state",
				Help: "存储熔断器状态（0关闭 1打开 2半开）",
			},
			[]string{"backend"},
		)
	})
}

// IncCounter 递增Counter
func IncCounter(counter prometheus.Counter) {
	counter.Inc()
}

// IncCounterVec 递增带标签的Counter
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGaugeVec 递增带标签的Gauge
func IncGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string) {
	gauge.With(labels).Inc()
}

// DecGaugeVec 递减带标签的Gauge
func DecGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string) {
	gauge.With(labels).Dec()
}

// SetGaugeVec 设置带标签的Gauge
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	gauge.With(labels).Set(value)
}

// ObserveHistogram 记录观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	histogram.Observe(value)
}

// ObserveHistogramVec 记录带标签的观测值
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}

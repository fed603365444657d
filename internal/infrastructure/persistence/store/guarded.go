package store

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/flatstore/pkg/circuitbreaker"
	"github.com/xiebiao/flatstore/pkg/metrics"
)

// GuardedBackend 经过熔断器的Backend
// 熔断期间读写直接返回circuitbreaker.ErrOpenState
type GuardedBackend struct {
	inner   Backend
	breaker *circuitbreaker.CircuitBreaker
}

// BreakerOptions 熔断参数
type BreakerOptions struct {
	MaxFailures uint32
	OpenTimeout time.Duration
	Interval    time.Duration
}

// NewGuardedBackend 用名为name的熔断器包装inner
// 状态变化写日志并更新store_breaker_state指标
func NewGuardedBackend(inner Backend, name string, opts BreakerOptions, log *zap.Logger) *GuardedBackend {
	metrics.InitMetrics()
	labels := map[string]string{"backend": name}
	metrics.SetGaugeVec(metrics.StoreBreakerState, labels, float64(circuitbreaker.StateClosed))

	breaker := circuitbreaker.New(name, circuitbreaker.Config{
		MaxRequests:  1,
		Interval:     opts.Interval,
		Timeout:      opts.OpenTimeout,
		ReadyToTrip:  circuitbreaker.ConsecutiveFailures(opts.MaxFailures),
		IsSuccessful: countsAsSuccess,
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			log.Warn("存储熔断器状态变化",
				zap.String("backend", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			metrics.SetGaugeVec(metrics.StoreBreakerState, labels, float64(to))
		},
	})
	return &GuardedBackend{inner: inner, breaker: breaker}
}

// countsAsSuccess 集合不存在、调用方取消都不是存储故障
func countsAsSuccess(err error) bool {
	return err == nil ||
		errors.Is(err, ErrNotExist) ||
		errors.Is(err, context.Canceled)
}

// State 熔断器当前状态
func (b *GuardedBackend) State() circuitbreaker.State {
	return b.breaker.State()
}

func (b *GuardedBackend) Read(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	err := b.breaker.Execute(func() error {
		var err error
		data, err = b.inner.Read(ctx, name)
		return err
	})
	return data, err
}

func (b *GuardedBackend) Write(ctx context.Context, name string, data []byte) error {
	return b.breaker.Execute(func() error {
		return b.inner.Write(ctx, name, data)
	})
}

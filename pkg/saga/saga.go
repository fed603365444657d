// Package saga 按顺序执行一组命名步骤
//
// 每个步骤由正向操作和可选的补偿操作组成：
//   - 某一步失败时，按逆序执行已完成步骤的补偿操作
//   - 补偿为nil的步骤失败后不回滚任何东西（单趟执行）
//
// 结算流程使用不带补偿的步骤，完成的步骤名即流程到达的状态。
package saga

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Step 表示Saga中的一个步骤
type Step struct {
	Name       string                          // 步骤名称，同时作为状态名
	Action     func(ctx context.Context) error // 正向操作
	Compensate func(ctx context.Context) error // 补偿操作，可为nil
}

// Saga 表示一次步骤编排
type Saga struct {
	steps    []Step
	executed []Step
	timeout  time.Duration // <=0 表示不设超时
	log      *zap.Logger
}

// NewSaga 创建Saga
// timeout<=0时不设置整体超时
func NewSaga(timeout time.Duration) *Saga {
	return &Saga{
		steps:   make([]Step, 0),
		timeout: timeout,
		log:     zap.NewNop(),
	}
}

// WithLogger 设置补偿失败时使用的日志
func (s *Saga) WithLogger(log *zap.Logger) *Saga {
	if log != nil {
		s.log = log
	}
	return s
}

// AddStep 追加步骤
func (s *Saga) AddStep(name string, action, compensate func(ctx context.Context) error) *Saga {
	s.steps = append(s.steps, Step{
		Name:       name,
		Action:     action,
		Compensate: compensate,
	})
	return s
}

// Execute 依次执行所有步骤
// 返回的错误保留原始错误链（errors.As可取出业务错误）
func (s *Saga) Execute(ctx context.Context) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	s.executed = s.executed[:0]
	for i, step := range s.steps {
		select {
		case <-ctx.Done():
			s.compensate(context.Background())
			return fmt.Errorf("saga超时: %w", ctx.Err())
		default:
		}

		if step.Action != nil {
			if err := step.Action(ctx); err != nil {
				s.compensate(context.Background())
				return fmt.Errorf("步骤[%d:%s]执行失败: %w", i, step.Name, err)
			}
		}

		s.executed = append(s.executed, step)
	}

	return nil
}

// Completed 返回已成功执行的步骤名（按执行顺序）
func (s *Saga) Completed() []string {
	names := make([]string, len(s.executed))
	for i, step := range s.executed {
		names[i] = step.Name
	}
	return names
}

// compensate 逆序执行补偿
// 补偿失败只记日志，继续补偿前面的步骤
func (s *Saga) compensate(ctx context.Context) {
	for i := len(s.executed) - 1; i >= 0; i-- {
		step := s.executed[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			s.log.Warn("补偿失败", zap.String("step", step.Name), zap.Error(err))
		}
	}
}

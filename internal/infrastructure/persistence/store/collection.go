package store

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/flatstore/pkg/errors"
	"github.com/xiebiao/flatstore/pkg/metrics"
	"github.com/xiebiao/flatstore/pkg/tracing"
)

// codec 持久化格式：4空格缩进，非ASCII和<>&原样输出
var codec = sonic.Config{
	EscapeHTML:     false,
	ValidateString: true,
}.Froze()

const indent = "    "

// Collection 一个命名的JSON数组集合
type Collection[T any] struct {
	backend Backend
	name    string
	seed    func() []T
	log     *zap.Logger
}

// NewCollection 创建集合
// seed每次调用都要返回新的切片（调用方可能修改它）
func NewCollection[T any](backend Backend, name string, seed func() []T, log *zap.Logger) *Collection[T] {
	if seed == nil {
		seed = func() []T { return []T{} }
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Collection[T]{
		backend: backend,
		name:    name,
		seed:    seed,
		log:     log.With(zap.String("collection", name)),
	}
}

// Name 集合名（文件名或key后缀）
func (c *Collection[T]) Name() string {
	return c.name
}

// Load 读取整个集合
// 1. 不存在：写入种子数据并返回
// 2. 内容无法解析：返回种子数据，不覆盖原内容
// 3. 内容为null：返回空切片
func (c *Collection[T]) Load(ctx context.Context) (records []T, err error) {
	ctx, span := tracing.StartSpan(ctx, "store.load "+c.name)
	defer func() { endSpan(span, len(records), err) }()

	data, err := c.backend.Read(ctx, c.name)
	if errors.Is(err, ErrNotExist) {
		records = c.seed()
		c.log.Info("集合不存在，写入种子数据", zap.Int("records", len(records)))
		if err := c.Save(ctx, records); err != nil {
			return nil, err
		}
		return records, nil
	}
	if err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeStorageError, "读取集合失败")
	}

	if err := codec.Unmarshal(data, &records); err != nil {
		c.log.Warn("集合内容无法解析，使用种子数据", zap.Error(err))
		metrics.InitMetrics()
		metrics.IncCounterVec(metrics.StoreSeedFallbacksTotal, map[string]string{"collection": c.name})
		span.AddEvent("seed fallback")
		return c.seed(), nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Save 整体覆盖集合
func (c *Collection[T]) Save(ctx context.Context, records []T) (err error) {
	ctx, span := tracing.StartSpan(ctx, "store.save "+c.name)
	defer func() { endSpan(span, len(records), err) }()

	if records == nil {
		records = []T{}
	}

	data, err := codec.MarshalIndent(records, "", indent)
	if err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeStorageError, "序列化集合失败")
	}

	if err := c.backend.Write(ctx, c.name, data); err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeStorageError, "写入集合失败")
	}
	return nil
}

func endSpan(span trace.Span, records int, err error) {
	span.SetAttributes(attribute.Int("store.records", records))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// Package event 领域事件：结算成功、借书、还书后发布
//
// 事件在集合写入成功之后发布，发布失败只记日志，不影响接口结果
package event

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 路由键（topic exchange）
const (
	OrderCreated = "order.created"
	BookBorrowed = "loan.borrowed"
	BookReturned = "loan.returned"
)

// Publisher 事件发布者（pkg/mq实现）
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, interface{}) error { return nil }

// NewNopPublisher 不发布任何事件（未启用events时使用）
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

// Envelope 事件信封
type Envelope struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// OrderCreatedPayload 结算成功
type OrderCreatedPayload struct {
	OrderID       int     `json:"orderId"`
	UserID        int     `json:"userId"`
	TotalPrice    float64 `json:"totalPrice"`
	TotalQuantity int     `json:"totalQuantity"`
}

// LoanPayload 借书/还书
type LoanPayload struct {
	TicketNumber string `json:"reader_ticket_number"`
	BookCode     string `json:"book_code"`
	BorrowDate   string `json:"borrow_date,omitempty"`
	ReturnDate   string `json:"return_date,omitempty"`
}

// Emit 包装成信封并发布
func Emit(ctx context.Context, pub Publisher, log *zap.Logger, routingKey string, payload interface{}) {
	env := Envelope{
		ID:         uuid.NewString(),
		Type:       routingKey,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	if err := pub.Publish(ctx, routingKey, env); err != nil {
		log.Warn("事件发布失败", zap.String("routing_key", routingKey), zap.String("event_id", env.ID), zap.Error(err))
	}
}

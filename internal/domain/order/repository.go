package order

import (
	"context"
)

// Repository 订单仓储接口
type Repository interface {
	// Create 追加订单，分配ID（当前最大ID+1）并回写到order.ID
	Create(ctx context.Context, order *Order) error

	// ListByUserID 按存储顺序返回用户的全部订单，没有时返回空切片
	ListByUserID(ctx context.Context, userID int) ([]*Order, error)
}

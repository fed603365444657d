package jsonstore

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/xiebiao/flatstore/internal/domain/order"
	"github.com/xiebiao/flatstore/internal/infrastructure/persistence/store"
)

// orderRepository 订单仓储实现（JSON集合）
type orderRepository struct {
	orders *store.Collection[OrderRecord]
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(backend store.Backend, log *zap.Logger) order.Repository {
	return &orderRepository{
		orders: store.NewCollection(backend, OrdersCollection, SeedOrders, log),
	}
}

// Create 追加订单并回填ID（最大ID+1）
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	records, err := r.orders.Load(ctx)
	if err != nil {
		return err
	}

	o.ID = nextID(records, func(rec OrderRecord) int { return rec.ID })
	records = append(records, fromOrder(o))

	return r.orders.Save(ctx, records)
}

func (r *orderRepository) ListByUserID(ctx context.Context, userID int) ([]*order.Order, error) {
	records, err := r.orders.Load(ctx)
	if err != nil {
		return nil, err
	}

	matched := lo.Filter(records, func(rec OrderRecord, _ int) bool { return rec.UserID == userID })
	return lo.Map(matched, func(rec OrderRecord, _ int) *order.Order {
		return toOrder(rec)
	}), nil
}

func toOrder(rec OrderRecord) *order.Order {
	items := lo.Map(rec.Items, func(item OrderItemRecord, _ int) order.Item {
		return order.Item{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Name:      item.Name,
			Price:     item.Price,
			ImageURL:  item.ImageURL,
		}
	})
	return &order.Order{
		ID:            rec.ID,
		UserID:        rec.UserID,
		Items:         items,
		TotalPrice:    rec.TotalPrice,
		TotalQuantity: rec.TotalQuantity,
		OrderDate:     rec.OrderDate,
		Status:        rec.Status,
	}
}

func fromOrder(o *order.Order) OrderRecord {
	items := lo.Map(o.Items, func(item order.Item, _ int) OrderItemRecord {
		return OrderItemRecord{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Name:      item.Name,
			Price:     item.Price,
			ImageURL:  item.ImageURL,
		}
	})
	return OrderRecord{
		ID:            o.ID,
		UserID:        o.UserID,
		Items:         items,
		TotalPrice:    o.TotalPrice,
		TotalQuantity: o.TotalQuantity,
		OrderDate:     o.OrderDate,
		Status:        o.Status,
	}
}

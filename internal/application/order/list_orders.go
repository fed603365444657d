package order

import (
	"context"

	"github.com/samber/lo"

	"github.com/xiebiao/flatstore/internal/domain/order"
)

// ListUserOrdersUseCase 查询用户订单
type ListUserOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListUserOrdersUseCase 创建查询用例
func NewListUserOrdersUseCase(orderRepo order.Repository) *ListUserOrdersUseCase {
	return &ListUserOrdersUseCase{orderRepo: orderRepo}
}

// OrderItemResponse 订单明细
type OrderItemResponse struct {
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
}

// OrderResponse 订单
type OrderResponse struct {
	ID            int                 `json:"id"`
	UserID        int                 `json:"userId"`
	Items         []OrderItemResponse `json:"items"`
	TotalPrice    float64             `json:"totalPrice"`
	TotalQuantity int                 `json:"totalQuantity"`
	OrderDate     string              `json:"orderDate"`
	Status        string              `json:"status"`
}

// Execute 按存储顺序返回用户订单，没有订单时返回空数组
func (uc *ListUserOrdersUseCase) Execute(ctx context.Context, userID int) ([]OrderResponse, error) {
	orders, err := uc.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return lo.Map(orders, func(o *order.Order, _ int) OrderResponse {
		return OrderResponse{
			ID:     o.ID,
			UserID: o.UserID,
			Items: lo.Map(o.Items, func(item order.Item, _ int) OrderItemResponse {
				return OrderItemResponse{
					ProductID: item.ProductID,
					Quantity:  item.Quantity,
					Name:      item.Name,
					Price:     item.Price,
					ImageURL:  item.ImageURL,
				}
			}),
			TotalPrice:    o.TotalPrice,
			TotalQuantity: o.TotalQuantity,
			OrderDate:     o.OrderDate,
			Status:        o.Status,
		}
	}), nil
}

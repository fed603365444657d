package order

import (
	"context"
	"errors"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/xiebiao/flatstore/internal/application/event"
	"github.com/xiebiao/flatstore/internal/domain/cart"
	"github.com/xiebiao/flatstore/internal/domain/order"
	"github.com/xiebiao/flatstore/internal/domain/product"
	"github.com/xiebiao/flatstore/pkg/metrics"
	"github.com/xiebiao/flatstore/pkg/saga"
)

// 结算流程的步骤（同时是流程到达的状态）
const (
	StepCartLoaded     = "CartLoaded"
	StepValidated      = "Validated"
	StepPricedLines    = "PricedLines"
	StepOrderPersisted = "OrderPersisted"
	StepCartCleared    = "CartCleared"
)

// CheckoutUseCase 结算用例：购物车 → 订单
//
// 流程：加载购物车 → 校验商品 → 计算明细 → 保存订单 → 删除购物车
//
// 注意：
// 1. 订单集合和购物车集合分两次写入，不是原子操作
// 2. 保存订单后、删除购物车前失败，会留下订单和未清空的购物车
// 3. 没有幂等键，重复提交会生成重复订单
// 各步骤都没有补偿操作；order.created事件在全部步骤完成后发布
type CheckoutUseCase struct {
	cartRepo    cart.Repository
	productRepo product.Repository
	orderRepo   order.Repository
	publisher   event.Publisher
	log         *zap.Logger
	now         func() time.Time
}

// NewCheckoutUseCase 创建结算用例
func NewCheckoutUseCase(
	cartRepo cart.Repository,
	productRepo product.Repository,
	orderRepo order.Repository,
	publisher event.Publisher,
	log *zap.Logger,
) *CheckoutUseCase {
	metrics.InitMetrics()
	return &CheckoutUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		publisher:   publisher,
		log:         log,
		now:         time.Now,
	}
}

// CheckoutResponse 结算响应
type CheckoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID int    `json:"orderId"`
}

// Execute 执行结算
func (uc *CheckoutUseCase) Execute(ctx context.Context, userID int) (*CheckoutResponse, error) {
	start := time.Now()

	var (
		userCart *cart.Cart
		products map[int]*product.Product
		lines    []order.Item
		created  *order.Order
	)

	s := saga.NewSaga(0).WithLogger(uc.log).
		AddStep(StepCartLoaded, func(ctx context.Context) error {
			c, err := uc.cartRepo.FindByUserID(ctx, userID)
			if errors.Is(err, cart.ErrCartNotFound) {
				return order.ErrEmptyCart
			}
			if err != nil {
				return err
			}
			if c.IsEmpty() {
				return order.ErrEmptyCart
			}
			userCart = c
			return nil
		}, nil).
		AddStep(StepValidated, func(ctx context.Context) error {
			all, err := uc.productRepo.List(ctx)
			if err != nil {
				return err
			}
			products = lo.KeyBy(all, func(p *product.Product) int { return p.ID })

			// 按购物车顺序，第一个不存在的商品即报错
			for _, item := range userCart.Items {
				if _, ok := products[item.ProductID]; !ok {
					return order.ErrUnknownProduct(item.ProductID)
				}
			}
			return nil
		}, nil).
		AddStep(StepPricedLines, func(ctx context.Context) error {
			lines = lo.Map(userCart.Items, func(item cart.Item, _ int) order.Item {
				p := products[item.ProductID]
				return order.Item{
					ProductID: item.ProductID,
					Quantity:  item.Quantity,
					Name:      p.Name,
					Price:     p.Price,
					ImageURL:  p.ImageURL,
				}
			})
			return nil
		}, nil).
		AddStep(StepOrderPersisted, func(ctx context.Context) error {
			created = order.NewOrder(userID, lines, uc.now())
			return uc.orderRepo.Create(ctx, created)
		}, nil).
		AddStep(StepCartCleared, func(ctx context.Context) error {
			return uc.cartRepo.Delete(ctx, userID)
		}, nil)

	err := s.Execute(ctx)
	metrics.ObserveHistogram(metrics.CheckoutDuration, time.Since(start).Seconds())
	if err != nil {
		metrics.IncCounterVec(metrics.CheckoutsTotal, map[string]string{"result": "failure"})
		uc.log.Info("结算失败",
			zap.Int("user_id", userID),
			zap.Strings("completed", s.Completed()),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.IncCounterVec(metrics.CheckoutsTotal, map[string]string{"result": "success"})
	uc.log.Info("结算成功",
		zap.Int("user_id", userID),
		zap.Int("order_id", created.ID),
		zap.Float64("total_price", created.TotalPrice),
	)
	event.Emit(ctx, uc.publisher, uc.log, event.OrderCreated, event.OrderCreatedPayload{
		OrderID:       created.ID,
		UserID:        created.UserID,
		TotalPrice:    created.TotalPrice,
		TotalQuantity: created.TotalQuantity,
	})

	return &CheckoutResponse{
		Success: true,
		Message: "Order created successfully",
		OrderID: created.ID,
	}, nil
}

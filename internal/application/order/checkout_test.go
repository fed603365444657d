package order

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiebiao/flatstore/internal/application/event"
	"github.com/xiebiao/flatstore/internal/domain/cart"
	"github.com/xiebiao/flatstore/internal/domain/order"
	"github.com/xiebiao/flatstore/internal/infrastructure/persistence/jsonstore"
	"github.com/xiebiao/flatstore/internal/infrastructure/persistence/store"
	apperrors "github.com/xiebiao/flatstore/pkg/errors"
)

// recordingPublisher 记录发布的事件
type recordingPublisher struct {
	keys []string
	envs []event.Envelope
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, message interface{}) error {
	p.keys = append(p.keys, routingKey)
	if env, ok := message.(event.Envelope); ok {
		p.envs = append(p.envs, env)
	}
	return nil
}

type fixture struct {
	events   *recordingPublisher
	carts    cart.Service
	cartRepo cart.Repository
	checkout *CheckoutUseCase
	list     *ListUserOrdersUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	backend := store.NewFileBackend(t.TempDir())
	log := zap.NewNop()

	cartRepo := jsonstore.NewCartRepository(backend, log)
	orderRepo := jsonstore.NewOrderRepository(backend, log)
	events := &recordingPublisher{}
	checkout := NewCheckoutUseCase(cartRepo, jsonstore.NewProductRepository(backend, log), orderRepo, events, log)
	checkout.now = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local) }

	return &fixture{
		events:   events,
		carts:    cart.NewService(cartRepo),
		cartRepo: cartRepo,
		checkout: checkout,
		list:     NewListUserOrdersUseCase(orderRepo),
	}
}

func TestCheckout_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.carts.AddItem(ctx, 1, 1, 2)
	require.NoError(t, err)

	resp, err := f.checkout.Execute(ctx, 1)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Order created successfully", resp.Message)
	assert.Equal(t, 1, resp.OrderID)

	orders, err := f.list.Execute(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	o := orders[0]
	assert.Equal(t, 25.98, o.TotalPrice)
	assert.Equal(t, 2, o.TotalQuantity)
	assert.Equal(t, "2024-05-01 09:30:00", o.OrderDate)
	assert.Equal(t, order.StatusPending, o.Status)
	assert.Equal(t, "MF DOOM - Mm..Food", o.Items[0].Name)
	assert.Equal(t, 12.99, o.Items[0].Price)

	// 购物车条目被整体删除
	_, err = f.cartRepo.FindByUserID(ctx, 1)
	assert.ErrorIs(t, err, cart.ErrCartNotFound)
	c, err := f.carts.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	require.Equal(t, []string{event.OrderCreated}, f.events.keys)
	assert.Equal(t, event.OrderCreatedPayload{
		OrderID:       1,
		UserID:        1,
		TotalPrice:    25.98,
		TotalQuantity: 2,
	}, f.events.envs[0].Payload)
}

func TestCheckout_SequentialIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for want := 1; want <= 2; want++ {
		_, err := f.carts.AddItem(ctx, 5, 2, 1)
		require.NoError(t, err)
		resp, err := f.checkout.Execute(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, want, resp.OrderID)
	}
}

func TestCheckout_EmptyOrMissingCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.checkout.Execute(ctx, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrEmptyCart)
	assert.Equal(t, http.StatusBadRequest, apperrors.GetAppError(err).HTTPStatus())

	// 存在但为空
	require.NoError(t, f.cartRepo.Save(ctx, cart.NewCart(2)))
	_, err = f.checkout.Execute(ctx, 2)
	assert.ErrorIs(t, err, order.ErrEmptyCart)
}

func TestCheckout_UnknownProductLeavesStateUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.carts.AddItem(ctx, 1, 1, 1)
	require.NoError(t, err)
	_, err = f.carts.AddItem(ctx, 1, 99, 1)
	require.NoError(t, err)

	_, err = f.checkout.Execute(ctx, 1)
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	assert.Equal(t, apperrors.ErrCodeUnknownProduct, appErr.Code)
	assert.Equal(t, "Product with ID 99 not found.", appErr.Message)

	orders, err := f.list.Execute(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, orders)

	c, err := f.cartRepo.FindByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, c.Items, 2)
	assert.Empty(t, f.events.keys)
}

func TestListUserOrders_Empty(t *testing.T) {
	f := newFixture(t)

	orders, err := f.list.Execute(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

package jsonstore

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/xiebiao/flatstore/internal/domain/cart"
	"github.com/xiebiao/flatstore/internal/infrastructure/persistence/store"
)

// cartRepository 购物车仓储实现（JSON集合）
type cartRepository struct {
	carts *store.Collection[CartRecord]
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(backend store.Backend, log *zap.Logger) cart.Repository {
	return &cartRepository{
		carts: store.NewCollection(backend, CartsCollection, SeedCarts, log),
	}
}

func (r *cartRepository) FindByUserID(ctx context.Context, userID int) (*cart.Cart, error) {
	records, err := r.carts.Load(ctx)
	if err != nil {
		return nil, err
	}

	rec, ok := lo.Find(records, func(rec CartRecord) bool { return rec.UserID == userID })
	if !ok {
		return nil, cart.ErrCartNotFound
	}
	return toCart(rec), nil
}

// Save 已存在则原位替换，保持集合顺序
func (r *cartRepository) Save(ctx context.Context, c *cart.Cart) error {
	records, err := r.carts.Load(ctx)
	if err != nil {
		return err
	}

	rec := fromCart(c)
	if _, idx, ok := lo.FindIndexOf(records, func(rec CartRecord) bool { return rec.UserID == c.UserID }); ok {
		records[idx] = rec
	} else {
		records = append(records, rec)
	}

	return r.carts.Save(ctx, records)
}

func (r *cartRepository) Delete(ctx context.Context, userID int) error {
	records, err := r.carts.Load(ctx)
	if err != nil {
		return err
	}

	_, idx, ok := lo.FindIndexOf(records, func(rec CartRecord) bool { return rec.UserID == userID })
	if !ok {
		return cart.ErrCartNotFound
	}

	return r.carts.Save(ctx, append(records[:idx], records[idx+1:]...))
}

func toCart(rec CartRecord) *cart.Cart {
	c := cart.NewCart(rec.UserID)
	for _, item := range rec.Items {
		c.Items = append(c.Items, cart.Item{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return c
}

func fromCart(c *cart.Cart) CartRecord {
	items := make([]CartItemRecord, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, CartItemRecord{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return CartRecord{UserID: c.UserID, Items: items}
}

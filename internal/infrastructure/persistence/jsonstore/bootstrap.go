package jsonstore

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/flatstore/internal/infrastructure/persistence/store"
)

// EnsureCatalog 加载catalog服务的全部集合，不存在的写入种子数据
// 返回每个集合的记录数
func EnsureCatalog(ctx context.Context, backend store.Backend, log *zap.Logger) (map[string]int, error) {
	counts := make(map[string]int, 4)

	if err := ensure(ctx, store.NewCollection(backend, ProductsCollection, SeedProducts, log), counts); err != nil {
		return nil, err
	}
	if err := ensure(ctx, store.NewCollection(backend, CartsCollection, SeedCarts, log), counts); err != nil {
		return nil, err
	}
	if err := ensure(ctx, store.NewCollection(backend, UsersCollection, SeedUsers, log), counts); err != nil {
		return nil, err
	}
	if err := ensure(ctx, store.NewCollection(backend, OrdersCollection, SeedOrders, log), counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// EnsureLibrary 加载library服务的全部集合，不存在的写入种子数据
func EnsureLibrary(ctx context.Context, backend store.Backend, log *zap.Logger) (map[string]int, error) {
	counts := make(map[string]int, 2)

	if err := ensure(ctx, store.NewCollection(backend, BooksCollection, SeedBooks, log), counts); err != nil {
		return nil, err
	}
	if err := ensure(ctx, store.NewCollection(backend, ReadersCollection, SeedReaders, log), counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func ensure[T any](ctx context.Context, c *store.Collection[T], counts map[string]int) error {
	records, err := c.Load(ctx)
	if err != nil {
		return err
	}
	counts[c.Name()] = len(records)
	return nil
}

package jsonstore

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/xiebiao/flatstore/internal/domain/product"
	"github.com/xiebiao/flatstore/internal/infrastructure/persistence/store"
)

// productRepository 商品仓储实现（JSON集合）
type productRepository struct {
	products *store.Collection[ProductRecord]
}

// NewProductRepository 创建商品仓储
func NewProductRepository(backend store.Backend, log *zap.Logger) product.Repository {
	return &productRepository{
		products: store.NewCollection(backend, ProductsCollection, SeedProducts, log),
	}
}

func (r *productRepository) List(ctx context.Context) ([]*product.Product, error) {
	records, err := r.products.Load(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(records, func(rec ProductRecord, _ int) *product.Product {
		return toProduct(rec)
	}), nil
}

func (r *productRepository) FindByID(ctx context.Context, id int) (*product.Product, error) {
	records, err := r.products.Load(ctx)
	if err != nil {
		return nil, err
	}

	rec, ok := lo.Find(records, func(rec ProductRecord) bool { return rec.ID == id })
	if !ok {
		return nil, product.ErrProductNotFound
	}
	return toProduct(rec), nil
}

func toProduct(rec ProductRecord) *product.Product {
	return &product.Product{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Category:    rec.Category,
		Price:       rec.Price,
		ImageURL:    rec.ImageURL,
	}
}

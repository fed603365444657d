package product

import (
	"context"
)

// Service 商品领域服务
type Service interface {
	ListProducts(ctx context.Context) ([]*Product, error)
	GetProduct(ctx context.Context, id int) (*Product, error)
}

type service struct {
	repo Repository
}

// NewService 创建商品服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

func (s *service) GetProduct(ctx context.Context, id int) (*Product, error) {
	return s.repo.FindByID(ctx, id)
}

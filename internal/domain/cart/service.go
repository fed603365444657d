package cart

import (
	"context"
	"errors"
)

// Service 购物车领域服务
// 说明：每个操作都是"加载 → 修改 → 整体保存"，没有锁
type Service interface {
	// GetCart 获取购物车，不存在时返回空购物车（不是错误）
	GetCart(ctx context.Context, userID int) (*Cart, error)

	// AddItem 加入商品，购物车不存在时自动创建
	AddItem(ctx context.Context, userID, productID, quantity int) (*Cart, error)

	// UpdateQuantity 修改数量，0表示移除
	UpdateQuantity(ctx context.Context, userID, productID, quantity int) (*Cart, error)

	// RemoveItem 移除商品行
	RemoveItem(ctx context.Context, userID, productID int) (*Cart, error)
}

type service struct {
	repo Repository
}

// NewService 创建购物车服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetCart(ctx context.Context, userID int) (*Cart, error) {
	c, err := s.repo.FindByUserID(ctx, userID)
	if errors.Is(err, ErrCartNotFound) {
		return NewCart(userID), nil
	}
	return c, err
}

func (s *service) AddItem(ctx context.Context, userID, productID, quantity int) (*Cart, error) {
	// 先校验数量，非法请求不触发任何读写
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	c, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := c.AddItem(productID, quantity); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) UpdateQuantity(ctx context.Context, userID, productID, quantity int) (*Cart, error) {
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	c, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := c.UpdateQuantity(productID, quantity); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) RemoveItem(ctx context.Context, userID, productID int) (*Cart, error) {
	c, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := c.RemoveItem(productID); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

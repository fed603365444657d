package cart

import (
	"context"
)

// Repository 购物车仓储接口
type Repository interface {
	// FindByUserID 查找用户购物车
	// 如果不存在，返回ErrCartNotFound
	FindByUserID(ctx context.Context, userID int) (*Cart, error)

	// Save 保存购物车：已存在则原位替换，否则追加
	Save(ctx context.Context, cart *Cart) error

	// Delete 删除用户的整个购物车条目
	// 如果不存在，返回ErrCartNotFound
	Delete(ctx context.Context, userID int) error
}

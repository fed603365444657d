package product

import (
	"context"
)

// Repository 商品仓储接口
// 每次调用都从存储重新加载整个集合，不做进程内缓存
type Repository interface {
	// List 按存储顺序返回全部商品
	List(ctx context.Context) ([]*Product, error)

	// FindByID 根据ID查找商品
	// 如果不存在，返回ErrProductNotFound
	FindByID(ctx context.Context, id int) (*Product, error)
}

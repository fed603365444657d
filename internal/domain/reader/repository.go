package reader

import (
	"context"
)

// Repository 读者仓储接口
type Repository interface {
	// List 按存储顺序返回全部读者
	List(ctx context.Context) ([]*Reader, error)

	// FindByTicket 根据借书证号查找读者
	// 如果不存在，返回ErrReaderNotFound
	FindByTicket(ctx context.Context, ticket string) (*Reader, error)

	// Create 追加读者
	// 注意：如果借书证号已存在，返回ErrReaderDuplicate
	Create(ctx context.Context, reader *Reader) error

	// Update 原位替换读者（包括借阅记录）
	// 如果不存在，返回ErrReaderNotFound
	Update(ctx context.Context, reader *Reader) error

	// Delete 删除读者
	// 如果不存在，返回ErrReaderNotFound
	Delete(ctx context.Context, ticket string) error
}

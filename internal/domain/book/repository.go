package book

import (
	"context"
)

// Repository 图书仓储接口
type Repository interface {
	// List 按存储顺序返回全部图书
	List(ctx context.Context) ([]*Book, error)

	// FindByCode 根据编号查找图书
	// 如果不存在，返回ErrBookNotFound
	FindByCode(ctx context.Context, code string) (*Book, error)

	// Create 追加图书
	// 注意：如果编号已存在，返回ErrBookDuplicate
	Create(ctx context.Context, book *Book) error

	// Update 原位替换图书（保持位置）
	// 如果不存在，返回ErrBookNotFound
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书，不做引用检查（由应用层负责）
	// 如果不存在，返回ErrBookNotFound
	Delete(ctx context.Context, code string) error
}

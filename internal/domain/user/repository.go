package user

import (
	"context"
)

// Repository 用户仓储接口
type Repository interface {
	// List 按存储顺序返回全部用户
	List(ctx context.Context) ([]*User, error)

	// FindByEmail 根据邮箱查找用户（精确匹配）
	// 如果不存在，返回ErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create 创建用户，分配ID（当前最大ID+1）并回写到user.ID
	// 注意：如果邮箱已存在，返回ErrEmailDuplicate
	Create(ctx context.Context, user *User) error
}

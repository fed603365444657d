package user

import (
	"context"
	"errors"

	"github.com/samber/lo"
)

// Service 用户领域服务
type Service interface {
	// Register 用户注册
	Register(ctx context.Context, name, email, birthDate, password string) (*User, error)

	// Login 用户登录
	Login(ctx context.Context, email, password string) (*User, error)

	// ListUsers 返回全部用户（包含密码字段）
	ListUsers(ctx context.Context) ([]*User, error)
}

type service struct {
	repo Repository
}

// NewService 创建用户服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register 用户注册
// 业务规则：邮箱唯一（精确匹配），密码原样保存
func (s *service) Register(ctx context.Context, name, email, birthDate, password string) (*User, error) {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailDuplicate
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	u := NewUser(name, email, birthDate, password)
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login 用户登录
// 不区分"邮箱不存在"和"密码错误"，统一返回ErrInvalidCredentials
func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	u, ok := lo.Find(users, func(u *User) bool {
		return u.Matches(email, password)
	})
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *service) ListUsers(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

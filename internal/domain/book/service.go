package book

import (
	"context"
)

// Service 图书领域服务
// 删除涉及读者集合的引用检查，放在application/library中
type Service interface {
	ListBooks(ctx context.Context) ([]*Book, error)
	GetBook(ctx context.Context, code string) (*Book, error)
	CreateBook(ctx context.Context, book *Book) (*Book, error)

	// UpdateBook 更新图书
	// 业务规则：先检查图书存在（404），再检查请求体编号与路径一致（400）
	UpdateBook(ctx context.Context, code string, book *Book) (*Book, error)
}

type service struct {
	repo Repository
}

// NewService 创建图书服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx)
}

func (s *service) GetBook(ctx context.Context, code string) (*Book, error) {
	return s.repo.FindByCode(ctx, code)
}

func (s *service) CreateBook(ctx context.Context, book *Book) (*Book, error) {
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *service) UpdateBook(ctx context.Context, code string, book *Book) (*Book, error) {
	if _, err := s.repo.FindByCode(ctx, code); err != nil {
		return nil, err
	}
	if !book.HasCode(code) {
		return nil, ErrCodeMismatch
	}

	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

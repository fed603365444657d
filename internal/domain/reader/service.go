package reader

import (
	"context"
)

// Service 读者领域服务
// 借阅/归还涉及图书集合，放在application/library中
type Service interface {
	ListReaders(ctx context.Context) ([]*Reader, error)
	GetReader(ctx context.Context, ticket string) (*Reader, error)

	// CreateReader 新建读者，忽略请求中的借阅记录
	CreateReader(ctx context.Context, reader *Reader) (*Reader, error)

	// UpdateReader 更新读者基本信息，保留已有借阅记录
	// 业务规则：先检查读者存在（404），再检查借书证号一致（400）
	UpdateReader(ctx context.Context, ticket string, reader *Reader) (*Reader, error)

	// DeleteReader 删除读者
	// 业务规则：还有借阅记录时拒绝（409）
	DeleteReader(ctx context.Context, ticket string) error
}

type service struct {
	repo Repository
}

// NewService 创建读者服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListReaders(ctx context.Context) ([]*Reader, error) {
	return s.repo.List(ctx)
}

func (s *service) GetReader(ctx context.Context, ticket string) (*Reader, error) {
	return s.repo.FindByTicket(ctx, ticket)
}

func (s *service) CreateReader(ctx context.Context, reader *Reader) (*Reader, error) {
	reader.Loans = []Loan{}
	if err := s.repo.Create(ctx, reader); err != nil {
		return nil, err
	}
	return reader, nil
}

func (s *service) UpdateReader(ctx context.Context, ticket string, reader *Reader) (*Reader, error) {
	existing, err := s.repo.FindByTicket(ctx, ticket)
	if err != nil {
		return nil, err
	}
	if !reader.HasTicket(ticket) {
		return nil, ErrTicketMismatch
	}

	reader.Loans = existing.Loans
	if err := s.repo.Update(ctx, reader); err != nil {
		return nil, err
	}
	return reader, nil
}

func (s *service) DeleteReader(ctx context.Context, ticket string) error {
	existing, err := s.repo.FindByTicket(ctx, ticket)
	if err != nil {
		return err
	}
	if existing.HasLoans() {
		return ErrReaderHasLoans
	}
	return s.repo.Delete(ctx, ticket)
}

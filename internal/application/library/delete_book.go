package library

import (
	"context"

	"github.com/samber/lo"

	"github.com/xiebiao/flatstore/internal/domain/book"
	"github.com/xiebiao/flatstore/internal/domain/reader"
)

// DeleteBookUseCase 删除图书
// 业务规则：任何读者的借阅记录引用该图书时拒绝删除
type DeleteBookUseCase struct {
	bookRepo   book.Repository
	readerRepo reader.Repository
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookRepo book.Repository, readerRepo reader.Repository) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookRepo: bookRepo, readerRepo: readerRepo}
}

// Execute 执行删除
func (uc *DeleteBookUseCase) Execute(ctx context.Context, code string) error {
	if _, err := uc.bookRepo.FindByCode(ctx, code); err != nil {
		return err
	}

	readers, err := uc.readerRepo.List(ctx)
	if err != nil {
		return err
	}
	if lo.ContainsBy(readers, func(rd *reader.Reader) bool { return rd.HasBorrowed(code) }) {
		return book.ErrBookInUse
	}

	return uc.bookRepo.Delete(ctx, code)
}

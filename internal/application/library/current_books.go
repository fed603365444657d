package library

import (
	"context"

	"github.com/samber/lo"

	"github.com/xiebiao/flatstore/internal/domain/book"
	"github.com/xiebiao/flatstore/internal/domain/reader"
)

// CurrentBooksUseCase 查询读者当前借阅的图书
type CurrentBooksUseCase struct {
	readerRepo reader.Repository
	bookRepo   book.Repository
}

// NewCurrentBooksUseCase 创建查询用例
func NewCurrentBooksUseCase(readerRepo reader.Repository, bookRepo book.Repository) *CurrentBooksUseCase {
	return &CurrentBooksUseCase{readerRepo: readerRepo, bookRepo: bookRepo}
}

// CurrentBook 借阅记录 + 图书标题/作者
// 图书已被删除时Title/Author为空
type CurrentBook struct {
	BookCode   string `json:"book_code"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	BorrowDate string `json:"borrow_date"`
	ReturnDate string `json:"return_date"`
}

// Execute 按借阅顺序返回
func (uc *CurrentBooksUseCase) Execute(ctx context.Context, ticket string) ([]CurrentBook, error) {
	rd, err := uc.readerRepo.FindByTicket(ctx, ticket)
	if err != nil {
		return nil, err
	}

	books, err := uc.bookRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byCode := lo.KeyBy(books, func(b *book.Book) string { return b.Code })

	return lo.Map(rd.Loans, func(l reader.Loan, _ int) CurrentBook {
		cb := CurrentBook{
			BookCode:   l.BookCode,
			BorrowDate: l.BorrowDate,
			ReturnDate: l.ReturnDate,
		}
		if b, ok := byCode[l.BookCode]; ok {
			cb.Title = b.Title
			cb.Author = b.Author
		}
		return cb
	}), nil
}

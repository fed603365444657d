package library

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/flatstore/internal/application/event"
	"github.com/xiebiao/flatstore/internal/domain/book"
	"github.com/xiebiao/flatstore/internal/domain/reader"
	"github.com/xiebiao/flatstore/pkg/metrics"
)

// BorrowBookUseCase 借书用例
// 检查顺序：读者存在 → 图书存在 → 未重复借阅
// 只写读者集合，图书集合不变
type BorrowBookUseCase struct {
	readerRepo reader.Repository
	bookRepo   book.Repository
	publisher  event.Publisher
	log        *zap.Logger
}

// NewBorrowBookUseCase 创建借书用例
func NewBorrowBookUseCase(
	readerRepo reader.Repository,
	bookRepo book.Repository,
	publisher event.Publisher,
	log *zap.Logger,
) *BorrowBookUseCase {
	metrics.InitMetrics()
	return &BorrowBookUseCase{
		readerRepo: readerRepo,
		bookRepo:   bookRepo,
		publisher:  publisher,
		log:        log,
	}
}

// BorrowRequest 借书请求
type BorrowRequest struct {
	TicketNumber string
	BookCode     string
	BorrowDate   string
	ReturnDate   string
}

// Execute 执行借书，返回更新后的读者
func (uc *BorrowBookUseCase) Execute(ctx context.Context, req BorrowRequest) (*reader.Reader, error) {
	rd, err := uc.readerRepo.FindByTicket(ctx, req.TicketNumber)
	if err != nil {
		return nil, err
	}

	if _, err := uc.bookRepo.FindByCode(ctx, req.BookCode); err != nil {
		return nil, err
	}

	if err := rd.Borrow(req.BookCode, req.BorrowDate, req.ReturnDate); err != nil {
		return nil, err
	}

	if err := uc.readerRepo.Update(ctx, rd); err != nil {
		return nil, err
	}

	metrics.IncCounterVec(metrics.LoansTotal, map[string]string{"action": "borrow"})
	uc.log.Info("借书成功", zap.String("ticket", req.TicketNumber), zap.String("book_code", req.BookCode))
	event.Emit(ctx, uc.publisher, uc.log, event.BookBorrowed, event.LoanPayload{
		TicketNumber: req.TicketNumber,
		BookCode:     req.BookCode,
		BorrowDate:   req.BorrowDate,
		ReturnDate:   req.ReturnDate,
	})
	return rd, nil
}

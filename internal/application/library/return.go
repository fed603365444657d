package library

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/flatstore/internal/application/event"
	"github.com/xiebiao/flatstore/internal/domain/reader"
	"github.com/xiebiao/flatstore/pkg/metrics"
)

// ReturnBookUseCase 还书用例
// 不检查图书是否仍在图书集合中
type ReturnBookUseCase struct {
	readerRepo reader.Repository
	publisher  event.Publisher
	log        *zap.Logger
}

// NewReturnBookUseCase 创建还书用例
func NewReturnBookUseCase(readerRepo reader.Repository, publisher event.Publisher, log *zap.Logger) *ReturnBookUseCase {
	metrics.InitMetrics()
	return &ReturnBookUseCase{readerRepo: readerRepo, publisher: publisher, log: log}
}

// Execute 执行还书，返回更新后的读者
func (uc *ReturnBookUseCase) Execute(ctx context.Context, ticket, bookCode string) (*reader.Reader, error) {
	rd, err := uc.readerRepo.FindByTicket(ctx, ticket)
	if err != nil {
		return nil, err
	}

	loan, err := rd.Return(bookCode)
	if err != nil {
		return nil, err
	}

	if err := uc.readerRepo.Update(ctx, rd); err != nil {
		return nil, err
	}

	metrics.IncCounterVec(metrics.LoansTotal, map[string]string{"action": "return"})
	uc.log.Info("还书成功", zap.String("ticket", ticket), zap.String("book_code", bookCode))
	event.Emit(ctx, uc.publisher, uc.log, event.BookReturned, event.LoanPayload{
		TicketNumber: ticket,
		BookCode:     bookCode,
		BorrowDate:   loan.BorrowDate,
		ReturnDate:   loan.ReturnDate,
	})
	return rd, nil
}

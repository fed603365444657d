package jsonstore

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/xiebiao/flatstore/internal/domain/reader"
	"github.com/xiebiao/flatstore/internal/infrastructure/persistence/store"
)

// readerRepository 读者仓储实现（JSON集合，自然键reader_ticket_number）
type readerRepository struct {
	readers *store.Collection[ReaderRecord]
}

// NewReaderRepository 创建读者仓储
func NewReaderRepository(backend store.Backend, log *zap.Logger) reader.Repository {
	return &readerRepository{
		readers: store.NewCollection(backend, ReadersCollection, SeedReaders, log),
	}
}

func (r *readerRepository) List(ctx context.Context) ([]*reader.Reader, error) {
	records, err := r.readers.Load(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(records, func(rec ReaderRecord, _ int) *reader.Reader {
		return toReader(rec)
	}), nil
}

func (r *readerRepository) FindByTicket(ctx context.Context, ticket string) (*reader.Reader, error) {
	records, err := r.readers.Load(ctx)
	if err != nil {
		return nil, err
	}

	rec, ok := lo.Find(records, func(rec ReaderRecord) bool { return rec.TicketNumber == ticket })
	if !ok {
		return nil, reader.ErrReaderNotFound
	}
	return toReader(rec), nil
}

func (r *readerRepository) Create(ctx context.Context, rd *reader.Reader) error {
	records, err := r.readers.Load(ctx)
	if err != nil {
		return err
	}

	if lo.ContainsBy(records, func(rec ReaderRecord) bool { return rec.TicketNumber == rd.TicketNumber }) {
		return reader.ErrReaderDuplicate
	}

	return r.readers.Save(ctx, append(records, fromReader(rd)))
}

func (r *readerRepository) Update(ctx context.Context, rd *reader.Reader) error {
	records, err := r.readers.Load(ctx)
	if err != nil {
		return err
	}

	_, idx, ok := lo.FindIndexOf(records, func(rec ReaderRecord) bool { return rec.TicketNumber == rd.TicketNumber })
	if !ok {
		return reader.ErrReaderNotFound
	}
	records[idx] = fromReader(rd)

	return r.readers.Save(ctx, records)
}

func (r *readerRepository) Delete(ctx context.Context, ticket string) error {
	records, err := r.readers.Load(ctx)
	if err != nil {
		return err
	}

	_, idx, ok := lo.FindIndexOf(records, func(rec ReaderRecord) bool { return rec.TicketNumber == ticket })
	if !ok {
		return reader.ErrReaderNotFound
	}

	return r.readers.Save(ctx, append(records[:idx], records[idx+1:]...))
}

func toReader(rec ReaderRecord) *reader.Reader {
	return &reader.Reader{
		TicketNumber: rec.TicketNumber,
		FullName:     rec.FullName,
		Address:      rec.Address,
		Phone:        rec.Phone,
		Loans: lo.Map(rec.BorrowedBooks, func(l LoanRecord, _ int) reader.Loan {
			return reader.Loan{BookCode: l.BookCode, BorrowDate: l.BorrowDate, ReturnDate: l.ReturnDate}
		}),
	}
}

func fromReader(rd *reader.Reader) ReaderRecord {
	return ReaderRecord{
		TicketNumber: rd.TicketNumber,
		FullName:     rd.FullName,
		Address:      rd.Address,
		Phone:        rd.Phone,
		BorrowedBooks: lo.Map(rd.Loans, func(l reader.Loan, _ int) LoanRecord {
			return LoanRecord{BookCode: l.BookCode, BorrowDate: l.BorrowDate, ReturnDate: l.ReturnDate}
		}),
	}
}

package jsonstore

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/xiebiao/flatstore/internal/domain/book"
	"github.com/xiebiao/flatstore/internal/infrastructure/persistence/store"
)

// bookRepository 图书仓储实现（JSON集合，自然键book_code）
type bookRepository struct {
	books *store.Collection[BookRecord]
}

// NewBookRepository 创建图书仓储
func NewBookRepository(backend store.Backend, log *zap.Logger) book.Repository {
	return &bookRepository{
		books: store.NewCollection(backend, BooksCollection, SeedBooks, log),
	}
}

func (r *bookRepository) List(ctx context.Context) ([]*book.Book, error) {
	records, err := r.books.Load(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(records, func(rec BookRecord, _ int) *book.Book {
		return toBook(rec)
	}), nil
}

func (r *bookRepository) FindByCode(ctx context.Context, code string) (*book.Book, error) {
	records, err := r.books.Load(ctx)
	if err != nil {
		return nil, err
	}

	rec, ok := lo.Find(records, func(rec BookRecord) bool { return rec.BookCode == code })
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return toBook(rec), nil
}

func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	records, err := r.books.Load(ctx)
	if err != nil {
		return err
	}

	if lo.ContainsBy(records, func(rec BookRecord) bool { return rec.BookCode == b.Code }) {
		return book.ErrBookDuplicate
	}

	return r.books.Save(ctx, append(records, fromBook(b)))
}

func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	records, err := r.books.Load(ctx)
	if err != nil {
		return err
	}

	_, idx, ok := lo.FindIndexOf(records, func(rec BookRecord) bool { return rec.BookCode == b.Code })
	if !ok {
		return book.ErrBookNotFound
	}
	records[idx] = fromBook(b)

	return r.books.Save(ctx, records)
}

func (r *bookRepository) Delete(ctx context.Context, code string) error {
	records, err := r.books.Load(ctx)
	if err != nil {
		return err
	}

	_, idx, ok := lo.FindIndexOf(records, func(rec BookRecord) bool { return rec.BookCode == code })
	if !ok {
		return book.ErrBookNotFound
	}

	return r.books.Save(ctx, append(records[:idx], records[idx+1:]...))
}

func toBook(rec BookRecord) *book.Book {
	return &book.Book{
		Code:            rec.BookCode,
		Author:          rec.Author,
		Title:           rec.Title,
		PublicationYear: rec.PublicationYear,
		Price:           rec.Price,
		IsNew:           rec.IsNew,
		Annotation:      rec.Annotation,
	}
}

func fromBook(b *book.Book) BookRecord {
	return BookRecord{
		BookCode:        b.Code,
		Author:          b.Author,
		Title:           b.Title,
		PublicationYear: b.PublicationYear,
		Price:           b.Price,
		IsNew:           b.IsNew,
		Annotation:      b.Annotation,
	}
}

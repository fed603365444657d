package handler

import (
	"github.com/samber/lo"

	"github.com/xiebiao/flatstore/internal/domain/book"
	"github.com/xiebiao/flatstore/internal/domain/cart"
	"github.com/xiebiao/flatstore/internal/domain/product"
	"github.com/xiebiao/flatstore/internal/domain/reader"
	"github.com/xiebiao/flatstore/internal/domain/user"
	"github.com/xiebiao/flatstore/internal/interface/http/dto"
)

// 领域实体 → HTTP DTO

func toProductResponse(p *product.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
	}
}

func toCartResponse(c *cart.Cart) dto.CartResponse {
	return dto.CartResponse{
		UserID: c.UserID,
		Items: lo.Map(c.Items, func(item cart.Item, _ int) dto.CartItemResponse {
			return dto.CartItemResponse{ProductID: item.ProductID, Quantity: item.Quantity}
		}),
	}
}

func toUserResponse(u *user.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		BirthDate: u.BirthDate,
		Password:  u.Password,
	}
}

func toBookResponse(b *book.Book) dto.BookResponse {
	return dto.BookResponse{
		BookCode:        b.Code,
		Author:          b.Author,
		Title:           b.Title,
		PublicationYear: b.PublicationYear,
		Price:           b.Price,
		IsNew:           b.IsNew,
		Annotation:      b.Annotation,
	}
}

func fromBookRequest(req dto.BookRequest) *book.Book {
	return &book.Book{
		Code:            req.BookCode,
		Author:          req.Author,
		Title:           req.Title,
		PublicationYear: req.PublicationYear,
		Price:           req.Price,
		IsNew:           req.IsNew,
		Annotation:      req.Annotation,
	}
}

func toReaderResponse(rd *reader.Reader) dto.ReaderResponse {
	return dto.ReaderResponse{
		TicketNumber: rd.TicketNumber,
		FullName:     rd.FullName,
		Address:      rd.Address,
		Phone:        rd.Phone,
		BorrowedBooks: lo.Map(rd.Loans, func(l reader.Loan, _ int) dto.LoanResponse {
			return dto.LoanResponse{BookCode: l.BookCode, BorrowDate: l.BorrowDate, ReturnDate: l.ReturnDate}
		}),
	}
}

func fromReaderRequest(req dto.ReaderRequest) *reader.Reader {
	return &reader.Reader{
		TicketNumber: req.TicketNumber,
		FullName:     req.FullName,
		Address:      req.Address,
		Phone:        req.Phone,
	}
}

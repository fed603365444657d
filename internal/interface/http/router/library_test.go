package router

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	applibrary "github.com/xiebiao/flatstore/internal/application/library"
	"github.com/xiebiao/flatstore/internal/interface/http/dto"
)

func newBook(code string) dto.BookRequest {
	return dto.BookRequest{
		BookCode:        code,
		Author:          "Антон Чехов",
		Title:           "Вишнёвый сад",
		PublicationYear: 1904,
		Price:           300,
		IsNew:           true,
		Annotation:      "Пьеса",
	}
}

func TestLibraryRoot(t *testing.T) {
	r, _ := newLibraryServer(t)

	w := doRequest(t, r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Library API"}`, w.Body.String())
}

func TestBooks_CRUD(t *testing.T) {
	r, _ := newLibraryServer(t)

	w := doRequest(t, r, http.MethodGet, "/books/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var books []dto.BookResponse
	parseBody(t, w, &books)
	require.Len(t, books, 2)
	assert.Equal(t, "B001", books[0].BookCode)

	w = doRequest(t, r, http.MethodPost, "/books/", newBook("B100"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created dto.BookResponse
	parseBody(t, w, &created)
	assert.Equal(t, "Вишнёвый сад", created.Title)

	w = doRequest(t, r, http.MethodPost, "/books/", newBook("B100"))
	requireError(t, w, http.StatusConflict)

	w = doRequest(t, r, http.MethodPost, "/books/", map[string]string{"title": "no code"})
	requireError(t, w, http.StatusBadRequest)

	update := newBook("B100")
	update.Price = 350
	w = doRequest(t, r, http.MethodPut, "/books/B100", update)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/books/B100", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got dto.BookResponse
	parseBody(t, w, &got)
	assert.Equal(t, 350.0, got.Price)

	// 路径与请求体编号不一致
	w = doRequest(t, r, http.MethodPut, "/books/B100", newBook("B101"))
	requireError(t, w, http.StatusBadRequest)

	w = doRequest(t, r, http.MethodPut, "/books/B404", newBook("B404"))
	requireError(t, w, http.StatusNotFound)

	w = doRequest(t, r, http.MethodDelete, "/books/B100", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Book deleted successfully"}`, w.Body.String())

	w = doRequest(t, r, http.MethodGet, "/books/B100", nil)
	requireError(t, w, http.StatusNotFound)
}

func TestReaders_CRUD(t *testing.T) {
	r, _ := newLibraryServer(t)

	w := doRequest(t, r, http.MethodPost, "/readers/", dto.ReaderRequest{
		TicketNumber: "R100",
		FullName:     "Анна Смирнова",
		Address:      "Москва",
		Phone:        "+7 900 000-00-00",
		BorrowedBooks: []dto.LoanResponse{
			{BookCode: "B001", BorrowDate: "2024-01-01", ReturnDate: "2024-01-15"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created dto.ReaderResponse
	parseBody(t, w, &created)
	assert.Empty(t, created.BorrowedBooks)

	w = doRequest(t, r, http.MethodPost, "/readers/", dto.ReaderRequest{TicketNumber: "R100", FullName: "Дубль"})
	requireError(t, w, http.StatusConflict)

	w = doRequest(t, r, http.MethodPut, "/readers/R100", dto.ReaderRequest{TicketNumber: "R999", FullName: "X"})
	requireError(t, w, http.StatusBadRequest)

	w = doRequest(t, r, http.MethodPut, "/readers/R100", dto.ReaderRequest{TicketNumber: "R100", FullName: "Анна Иванова"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/readers/R100", nil)
	var got dto.ReaderResponse
	parseBody(t, w, &got)
	assert.Equal(t, "Анна Иванова", got.FullName)

	w = doRequest(t, r, http.MethodGet, "/readers/", nil)
	var readers []dto.ReaderResponse
	parseBody(t, w, &readers)
	assert.Len(t, readers, 2)

	w = doRequest(t, r, http.MethodDelete, "/readers/R100", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Reader deleted successfully"}`, w.Body.String())

	w = doRequest(t, r, http.MethodDelete, "/readers/R100", nil)
	requireError(t, w, http.StatusNotFound)
}

func TestBorrowAndReturn(t *testing.T) {
	r, _ := newLibraryServer(t)

	borrow := dto.BorrowRequest{BookCode: "B001", BorrowDate: "2024-01-01", ReturnDate: "2024-01-15"}

	w := doRequest(t, r, http.MethodPost, "/readers/R001/borrow", borrow)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var rd dto.ReaderResponse
	parseBody(t, w, &rd)
	require.Len(t, rd.BorrowedBooks, 1)
	assert.Equal(t, "B001", rd.BorrowedBooks[0].BookCode)

	w = doRequest(t, r, http.MethodPost, "/readers/R001/borrow", borrow)
	requireError(t, w, http.StatusConflict)

	w = doRequest(t, r, http.MethodPost, "/readers/R001/borrow", dto.BorrowRequest{BookCode: "B404"})
	requireError(t, w, http.StatusNotFound)

	w = doRequest(t, r, http.MethodPost, "/readers/R404/borrow", borrow)
	requireError(t, w, http.StatusNotFound)

	w = doRequest(t, r, http.MethodGet, "/readers/R001/current_books", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var current []applibrary.CurrentBook
	parseBody(t, w, &current)
	require.Len(t, current, 1)
	assert.Equal(t, "Мастер и Маргарита", current[0].Title)
	assert.Equal(t, "2024-01-15", current[0].ReturnDate)

	// 借出中的图书和有借阅的读者都不能删除
	w = doRequest(t, r, http.MethodDelete, "/books/B001", nil)
	requireError(t, w, http.StatusConflict)
	w = doRequest(t, r, http.MethodDelete, "/readers/R001", nil)
	requireError(t, w, http.StatusConflict)

	w = doRequest(t, r, http.MethodPost, "/readers/R001/return", dto.ReturnRequest{BookCode: "B001"})
	require.Equal(t, http.StatusOK, w.Code)
	parseBody(t, w, &rd)
	assert.Empty(t, rd.BorrowedBooks)

	w = doRequest(t, r, http.MethodPost, "/readers/R001/return", dto.ReturnRequest{BookCode: "B001"})
	requireError(t, w, http.StatusNotFound)

	w = doRequest(t, r, http.MethodGet, "/readers/R001/current_books", nil)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doRequest(t, r, http.MethodDelete, "/books/B001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(t, r, http.MethodDelete, "/readers/R001", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	applibrary "github.com/xiebiao/flatstore/internal/application/library"
	"github.com/xiebiao/flatstore/internal/domain/book"
	"github.com/xiebiao/flatstore/internal/interface/http/dto"
	"github.com/xiebiao/flatstore/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	bookService       book.Service
	deleteBookUseCase *applibrary.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(bookService book.Service, deleteBookUseCase *applibrary.DeleteBookUseCase) *BookHandler {
	return &BookHandler{
		bookService:       bookService,
		deleteBookUseCase: deleteBookUseCase,
	}
}

// ListBooks 图书列表
// @Summary      图书列表
// @Tags         books
// @Produce      json
// @Success      200 {array} dto.BookResponse
// @Router       /books/ [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.bookService.ListBooks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, lo.Map(books, func(b *book.Book, _ int) dto.BookResponse {
		return toBookResponse(b)
	}))
}

// CreateBook 新建图书
// @Summary      新建图书
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        request body dto.BookRequest true "图书信息"
// @Success      201 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      409 {object} response.ErrorBody "编号已存在"
// @Router       /books/ [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidParams(c, err)
		return
	}

	b, err := h.bookService.CreateBook(c.Request.Context(), fromBookRequest(req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toBookResponse(b))
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         books
// @Produce      json
// @Param        code path string true "图书编号"
// @Success      200 {object} dto.BookResponse
// @Failure      404 {object} response.ErrorBody "Book not found"
// @Router       /books/{code} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	var uri dto.BookURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.InvalidParams(c, err)
		return
	}

	b, err := h.bookService.GetBook(c.Request.Context(), uri.Code)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toBookResponse(b))
}

// UpdateBook 更新图书
// @Summary      更新图书
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        code    path string          true "图书编号"
// @Param        request body dto.BookRequest true "图书信息"
// @Success      200 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "编号与路径不一致"
// @Failure      404 {object} response.ErrorBody "Book not found"
// @Router       /books/{code} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var uri dto.BookURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.InvalidParams(c, err)
		return
	}
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidParams(c, err)
		return
	}

	b, err := h.bookService.UpdateBook(c.Request.Context(), uri.Code, fromBookRequest(req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toBookResponse(b))
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  图书被借出时拒绝删除
// @Tags         books
// @Produce      json
// @Param        code path string true "图书编号"
// @Success      200 {object} response.MessageBody
// @Failure      404 {object} response.ErrorBody "Book not found"
// @Failure      409 {object} response.ErrorBody "图书仍被借出"
// @Router       /books/{code} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	var uri dto.BookURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.InvalidParams(c, err)
		return
	}

	if err := h.deleteBookUseCase.Execute(c.Request.Context(), uri.Code); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Book deleted successfully")
}

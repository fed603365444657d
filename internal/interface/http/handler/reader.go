package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	applibrary "github.com/xiebiao/flatstore/internal/application/library"
	"github.com/xiebiao/flatstore/internal/domain/reader"
	"github.com/xiebiao/flatstore/internal/interface/http/dto"
	"github.com/xiebiao/flatstore/pkg/response"
)

// ReaderHandler 读者HTTP处理器（含借书/还书）
type ReaderHandler struct {
	readerService       reader.Service
	borrowUseCase       *applibrary.BorrowBookUseCase
	returnUseCase       *applibrary.ReturnBookUseCase
	currentBooksUseCase *applibrary.CurrentBooksUseCase
}

// NewReaderHandler 创建读者处理器
func NewReaderHandler(
	readerService reader.Service,
	borrowUseCase *applibrary.BorrowBookUseCase,
	returnUseCase *applibrary.ReturnBookUseCase,
	currentBooksUseCase *applibrary.CurrentBooksUseCase,
) *ReaderHandler {
	return &ReaderHandler{
		readerService:       readerService,
		borrowUseCase:       borrowUseCase,
		returnUseCase:       returnUseCase,
		currentBooksUseCase: currentBooksUseCase,
	}
}

// ListReaders 读者列表
// @Summary      读者列表
// @Tags         readers
// @Produce      json
// @Success      200 {array} dto.ReaderResponse
// @Router       /readers/ [get]
func (h *ReaderHandler) ListReaders(c *gin.Context) {
	readers, err := h.readerService.ListReaders(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, lo.Map(readers, func(rd *reader.Reader, _ int) dto.ReaderResponse {
		return toReaderResponse(rd)
	}))
}

// CreateReader 新建读者
// @Summary      新建读者
// @Description  borrowed_books被忽略，新读者没有借阅记录
// @Tags         readers
// @Accept       json
// @Produce      json
// @Param        request body dto.ReaderRequest true "读者信息"
// @Success      201 {object} dto.ReaderResponse
// @Failure      409 {object} response.ErrorBody "借书证号已存在"
// @Router       /readers/ [post]
func (h *ReaderHandler) CreateReader(c *gin.Context) {
	var req dto.ReaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidParams(c, err)
		return
	}

	rd, err := h.readerService.CreateReader(c.Request.Context(), fromReaderRequest(req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toReaderResponse(rd))
}

// GetReader 读者详情
// @Summary      读者详情
// @Tags         readers
// @Produce      json
// @Param        ticket path string true "借书证号"
// @Success      200 {object} dto.ReaderResponse
// @Failure      404 {object} response.ErrorBody "Reader not found"
// @Router       /readers/{ticket} [get]
func (h *ReaderHandler) GetReader(c *gin.Context) {
	var uri dto.ReaderURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.InvalidParams(c, err)
		return
	}

	rd, err := h.readerService.GetReader(c.Request.Context(), uri.Ticket)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toReaderResponse(rd))
}

// UpdateReader 更新读者
// @Summary      更新读者
// @Description  只更新基本信息，借阅记录保持不变
// @Tags         readers
// @Accept       json
// @Produce      json
// @Param        ticket  path string            true "借书证号"
// @Param        request body dto.ReaderRequest true "读者信息"
// @Success      200 {object} dto.ReaderResponse
// @Failure      400 {object} response.ErrorBody "借书证号与路径不一致"
// @Failure      404 {object} response.ErrorBody "Reader not found"
// @Router       /readers/{ticket} [put]
func (h *ReaderHandler) UpdateReader(c *gin.Context) {
	var uri dto.ReaderURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.InvalidParams(c, err)
		return
	}
	var req dto.ReaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidParams(c, err)
		return
	}

	rd, err := h.readerService.UpdateReader(c.Request.Context(), uri.Ticket, fromReaderRequest(req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toReaderResponse(rd))
}

// DeleteReader 删除读者
// @Summary      删除读者
// @Description  还有未归还图书时拒绝删除
// @Tags         readers
// @Produce      json
// @Param        ticket path string true "借书证号"
// @Success      200 {object} response.MessageBody
// @Failure      404 {object} response.ErrorBody "Reader not found"
// @Failure      409 {object} response.ErrorBody "读者仍有未还图书"
// @Router       /readers/{ticket} [delete]
func (h *ReaderHandler) DeleteReader(c *gin.Context) {
	var uri dto.ReaderURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.InvalidParams(c, err)
		return
	}

	if err := h.readerService.DeleteReader(c.Request.Context(), uri.Ticket); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Reader deleted successfully")
}

// Borrow 借书
// @Summary      借书
// @Tags         readers
// @Accept       json
// @Produce      json
// @Param        ticket  path string            true "借书证号"
// @Param        request body dto.BorrowRequest true "借阅信息"
// @Success      200 {object} dto.ReaderResponse
// @Failure      404 {object} response.ErrorBody "读者或图书不存在"
// @Failure      409 {object} response.ErrorBody "已借阅该图书"
// @Router       /readers/{ticket}/borrow [post]
func (h *ReaderHandler) Borrow(c *gin.Context) {
	var uri dto.ReaderURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.InvalidParams(c, err)
		return
	}
	var req dto.BorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidParams(c, err)
		return
	}

	rd, err := h.borrowUseCase.Execute(c.Request.Context(), applibrary.BorrowRequest{
		TicketNumber: uri.Ticket,
		BookCode:     req.BookCode,
		BorrowDate:   req.BorrowDate,
		ReturnDate:   req.ReturnDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toReaderResponse(rd))
}

// Return 还书
// @Summary      还书
// @Tags         readers
// @Accept       json
// @Produce      json
// @Param        ticket  path string            true "借书证号"
// @Param        request body dto.ReturnRequest true "图书编号"
// @Success      200 {object} dto.ReaderResponse
// @Failure      404 {object} response.ErrorBody "读者不存在或未借阅该图书"
// @Router       /readers/{ticket}/return [post]
func (h *ReaderHandler) Return(c *gin.Context) {
	var uri dto.ReaderURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.InvalidParams(c, err)
		return
	}
	var req dto.ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidParams(c, err)
		return
	}

	rd, err := h.returnUseCase.Execute(c.Request.Context(), uri.Ticket, req.BookCode)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toReaderResponse(rd))
}

// CurrentBooks 当前借阅
// @Summary      当前借阅的图书
// @Tags         readers
// @Produce      json
// @Param        ticket path string true "借书证号"
// @Success      200 {array} applibrary.CurrentBook
// @Failure      404 {object} response.ErrorBody "Reader not found"
// @Router       /readers/{ticket}/current_books [get]
func (h *ReaderHandler) CurrentBooks(c *gin.Context) {
	var uri dto.ReaderURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.InvalidParams(c, err)
		return
	}

	books, err := h.currentBooksUseCase.Execute(c.Request.Context(), uri.Ticket)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, books)
}

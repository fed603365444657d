package reader

import (
	apperrors "github.com/xiebiao/flatstore/pkg/errors"
)

// 读者领域错误定义
var (
	// ErrReaderNotFound 读者不存在
	ErrReaderNotFound = apperrors.New(apperrors.ErrCodeReaderNotFound, "Reader not found")

	// ErrReaderDuplicate 借书证号已存在
	ErrReaderDuplicate = apperrors.New(apperrors.ErrCodeReaderDuplicate, "Reader with this ticket number already exists")

	// ErrTicketMismatch 请求体中的借书证号与路径不一致
	ErrTicketMismatch = apperrors.New(apperrors.ErrCodeKeyMismatch, "Reader ticket number in body does not match path")

	// ErrReaderHasLoans 读者还有未归还的图书，不能删除
	ErrReaderHasLoans = apperrors.New(apperrors.ErrCodeReaderHasLoans, "Reader has borrowed books and cannot be deleted")

	// ErrAlreadyBorrowed 读者已借阅该图书
	ErrAlreadyBorrowed = apperrors.New(apperrors.ErrCodeAlreadyBorrowed, "Book already borrowed by this reader")

	// ErrLoanNotFound 读者没有借阅该图书
	ErrLoanNotFound = apperrors.New(apperrors.ErrCodeLoanNotFound, "Book not borrowed by this reader")
)

package book

import (
	apperrors "github.com/xiebiao/flatstore/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "Book not found")

	// ErrBookDuplicate 图书编号已存在
	ErrBookDuplicate = apperrors.New(apperrors.ErrCodeBookDuplicate, "Book with this code already exists")

	// ErrCodeMismatch 请求体中的book_code与路径不一致
	ErrCodeMismatch = apperrors.New(apperrors.ErrCodeKeyMismatch, "Book code in body does not match path")

	// ErrBookInUse 图书仍被读者借阅，不能删除
	ErrBookInUse = apperrors.New(apperrors.ErrCodeBookInUse, "Book is currently borrowed and cannot be deleted")
)

package user

import (
	apperrors "github.com/xiebiao/flatstore/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeUserNotFound, "User not found")

	// ErrEmailDuplicate 邮箱已注册
	ErrEmailDuplicate = apperrors.New(apperrors.ErrCodeEmailDuplicate, "User with this email already exists")

	// ErrInvalidCredentials 邮箱或密码错误
	ErrInvalidCredentials = apperrors.New(apperrors.ErrCodeBadCredentials, "Invalid email or password")
)

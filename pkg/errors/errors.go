package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code是业务错误码，前三位即HTTP状态码（40400 → 404）
// 2. Message是返回给客户端的提示信息
// 3. Err是内部错误，只记录日志，不返回给客户端
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus 由业务错误码推导HTTP状态码
func (e *AppError) HTTPStatus() int {
	status := e.Code / 100
	if status < 400 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf 格式化消息创建AppError（如"Product with ID 3 not found."）
func Newf(code int, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap 包装系统错误，错误码为ErrCodeInternal
func Wrap(err error, message string) *AppError {
	return WrapCode(err, ErrCodeInternal, message)
}

// WrapCode 用指定错误码包装系统错误（如磁盘写入失败、Redis错误）
func WrapCode(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：前三位是HTTP状态码，后两位区分具体原因
// - 400xx: 请求不合法（数量非法、路径与请求体不一致、空购物车）
// - 404xx: 资源不存在
// - 409xx: 冲突（主键重复、引用完整性、重复借阅）
// - 500xx: 服务端错误（文件写入失败等）

const (
	// 请求错误（40000-40099）
	ErrCodeBadRequest      = 40000 // 通用
	ErrCodeInvalidParams   = 40001 // 参数绑定/校验失败
	ErrCodeInvalidQuantity = 40002 // 数量非法
	ErrCodeKeyMismatch     = 40003 // 路径主键与请求体不一致
	ErrCodeEmptyCart       = 40004 // 购物车为空
	ErrCodeUnknownProduct  = 40005 // 结算时商品不存在
	ErrCodeBadCredentials  = 40006 // 邮箱或密码错误

	// 资源不存在（40400-40499）
	ErrCodeNotFound         = 40400 // 通用
	ErrCodeProductNotFound  = 40401
	ErrCodeCartNotFound     = 40402
	ErrCodeCartItemNotFound = 40403
	ErrCodeUserNotFound     = 40404
	ErrCodeBookNotFound     = 40405
	ErrCodeReaderNotFound   = 40406
	ErrCodeLoanNotFound     = 40407

	// 冲突（40900-40999）
	ErrCodeConflict        = 40900 // 通用
	ErrCodeEmailDuplicate  = 40901
	ErrCodeBookDuplicate   = 40902
	ErrCodeReaderDuplicate = 40903
	ErrCodeBookInUse       = 40904 // 图书仍被借出
	ErrCodeReaderHasLoans  = 40905 // 读者仍有未还图书
	ErrCodeAlreadyBorrowed = 40906

	// 系统错误（50000-50099）
	ErrCodeInternal     = 50000
	ErrCodeStorageError = 50001
)

// =========================================
// 预定义错误
// =========================================

var (
	ErrInternal      = New(ErrCodeInternal, "Internal server error")
	ErrInvalidParams = New(ErrCodeInvalidParams, "Invalid request parameters")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "Internal server error")
}

// IsCode 判断错误链中是否包含指定业务码
func IsCode(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

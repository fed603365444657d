package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/flatstore/pkg/errors"
)

// ErrorBody 错误响应结构
// 设计说明：
// 1. HTTP状态码由AppError推导（404/409/400/500）
// 2. Code是业务错误码，方便客户端区分同一状态码下的不同原因
// 3. Detail与Message相同，兼容读取detail字段的前端
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// MessageBody 只有提示信息的响应（删除成功等）
type MessageBody struct {
	Message string `json:"message"`
}

// Success 成功响应，直接返回业务数据
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message 成功响应，只带提示信息
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageBody{Message: message})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	if err := cartService.AddItem(...); err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 内部错误写日志，不返回给客户端
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
		loggerFrom(c).Error("request failed",
			zap.Int("code", appErr.Code),
			zap.String("message", appErr.Message),
			zap.Error(appErr.Err),
		)
	}

	c.AbortWithStatusJSON(appErr.HTTPStatus(), ErrorBody{
		Code:    appErr.Code,
		Message: appErr.Message,
		Detail:  appErr.Message,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	Error(c, apperrors.New(code, message))
}

// InvalidParams 参数绑定失败
func InvalidParams(c *gin.Context, err error) {
	ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "Invalid request parameters: "+err.Error())
}

// loggerKey 日志中间件写入Context的key
const loggerKey = "logger"

// SetLogger 将请求级日志写入Context（由日志中间件调用）
func SetLogger(c *gin.Context, log *zap.Logger) {
	c.Set(loggerKey, log)
}

func loggerFrom(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if log, ok := v.(*zap.Logger); ok {
			return log
		}
	}
	return zap.L()
}

package user

import (
	"context"

	"github.com/xiebiao/flatstore/internal/domain/user"
)

// LoginUseCase 用户登录用例
// 只校验邮箱和密码，不签发token，也不保存会话
type LoginUseCase struct {
	userService user.Service
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(userService user.Service) *LoginUseCase {
	return &LoginUseCase{userService: userService}
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	u, err := uc.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    toUserInfo(u),
	}, nil
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string
	Password string
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	appuser "github.com/xiebiao/flatstore/internal/application/user"
	"github.com/xiebiao/flatstore/internal/domain/user"
	"github.com/xiebiao/flatstore/internal/interface/http/dto"
	"github.com/xiebiao/flatstore/pkg/response"
)

// AuthHandler 用户HTTP处理器
type AuthHandler struct {
	userService     user.Service
	registerUseCase *appuser.RegisterUseCase
	loginUseCase    *appuser.LoginUseCase
}

// NewAuthHandler 创建用户处理器
func NewAuthHandler(
	userService user.Service,
	registerUseCase *appuser.RegisterUseCase,
	loginUseCase *appuser.LoginUseCase,
) *AuthHandler {
	return &AuthHandler{
		userService:     userService,
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
	}
}

// Users 用户列表
// @Summary      用户列表
// @Description  返回完整用户记录（包含密码字段）
// @Tags         Auth
// @Produce      json
// @Success      200 {array} dto.UserResponse
// @Router       /api/Auth/Users [get]
func (h *AuthHandler) Users(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, lo.Map(users, func(u *user.User, _ int) dto.UserResponse {
		return toUserResponse(u)
	}))
}

// Register 用户注册
// @Summary      用户注册
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      200 {object} appuser.AuthResponse
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      409 {object} response.ErrorBody "User with this email already exists"
// @Router       /api/Auth/Register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidParams(c, err)
		return
	}

	resp, err := h.registerUseCase.Execute(c.Request.Context(), appuser.RegisterRequest{
		Name:      req.Name,
		Email:     req.Email,
		BirthDate: req.BirthDate,
		Password:  req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, resp)
}

// Login 用户登录
// @Summary      用户登录
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} appuser.AuthResponse
// @Failure      400 {object} response.ErrorBody "Invalid email or password"
// @Router       /api/Auth/Login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidParams(c, err)
		return
	}

	resp, err := h.loginUseCase.Execute(c.Request.Context(), appuser.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, resp)
}

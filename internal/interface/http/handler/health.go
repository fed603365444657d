package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/flatstore/internal/interface/http/dto"
	"github.com/xiebiao/flatstore/pkg/response"
)

// Ping 健康检查
// @Summary      健康检查
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /ping [get]
func Ping(c *gin.Context) {
	response.Success(c, gin.H{
		"message": "pong",
		"status":  "healthy",
	})
}

// LibraryRoot library服务根路径
// @Summary      服务信息
// @Tags         health
// @Produce      json
// @Success      200 {object} dto.ServiceInfo
// @Router       / [get]
func LibraryRoot(c *gin.Context) {
	response.Success(c, dto.ServiceInfo{Message: "Library API"})
}

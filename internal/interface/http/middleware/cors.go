package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/xiebiao/flatstore/internal/infrastructure/config"
)

// allMethods allow_methods为"*"且允许认证信息时展开的方法列表
var allMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
	http.MethodDelete, http.MethodHead, http.MethodOptions,
}

// CORS 跨域资源共享中间件
// allow_origins包含"*"时接受任何Origin，并原样回写请求的Origin
// 允许携带认证信息时浏览器把"*"当作字面量：
//   - 方法展开为完整列表
//   - 预检请求的Access-Control-Request-Headers原样回写
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	base := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}

	if len(cfg.AllowOrigins) == 0 || lo.Contains(cfg.AllowOrigins, "*") {
		base.AllowOriginFunc = func(string) bool { return true }
	} else {
		base.AllowOrigins = cfg.AllowOrigins
	}

	if !cfg.AllowCredentials {
		return cors.New(base)
	}

	if lo.Contains(cfg.AllowMethods, "*") {
		base.AllowMethods = allMethods
	}
	handler := cors.New(base)
	if !lo.Contains(cfg.AllowHeaders, "*") {
		return handler
	}

	return func(c *gin.Context) {
		requested := requestedHeaders(c.Request)
		if c.Request.Method != http.MethodOptions || len(requested) == 0 {
			handler(c)
			return
		}
		preflight := base
		preflight.AllowHeaders = requested
		cors.New(preflight)(c)
	}
}

// requestedHeaders 预检请求声明的请求头
func requestedHeaders(r *http.Request) []string {
	raw := r.Header.Get("Access-Control-Request-Headers")
	return lo.Compact(lo.Map(strings.Split(raw, ","), func(h string, _ int) string {
		return strings.TrimSpace(h)
	}))
}

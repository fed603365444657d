package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/flatstore/pkg/metrics"
)

// unmatchedPath 未匹配任何路由的请求
const unmatchedPath = "unmatched"

// Metrics HTTP指标中间件
// path使用路由模板（/books/:code），未匹配路由记为"unmatched"，避免标签基数爆炸
func Metrics(service string) gin.HandlerFunc {
	metrics.InitMetrics()
	inProgress := map[string]string{"service": service}

	return func(c *gin.Context) {
		metrics.IncGaugeVec(metrics.HTTPRequestsInProgress, inProgress)
		start := time.Now()

		c.Next()

		metrics.DecGaugeVec(metrics.HTTPRequestsInProgress, inProgress)

		path := c.FullPath()
		if path == "" {
			path = unmatchedPath
		}

		metrics.IncCounterVec(metrics.HTTPRequestsTotal, map[string]string{
			"service": service,
			"method":  c.Request.Method,
			"path":    path,
			"status":  strconv.Itoa(c.Writer.Status()),
		})
		metrics.ObserveHistogramVec(metrics.HTTPRequestDuration, map[string]string{
			"service": service,
			"method":  c.Request.Method,
			"path":    path,
		}, time.Since(start).Seconds())
	}
}

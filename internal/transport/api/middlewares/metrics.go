package middlewares

import (
	"time"

	"github.com/fsdevblog/groph-bank/internal/metrics"
	"github.com/gin-gonic/gin"
)

const unmatchedRoute = "unmatched"

func Metrics(m *metrics.HTTP) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		m.Observe(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

package middlewares

import (
	apimw "github.com/fsdevblog/groph-bank/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID присваивает запросу X-Request-ID, если клиент его не передал, и возвращает его в ответе.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(apimw.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			c.Request.Header.Set(apimw.RequestIDHeader, id)
		}
		c.Header(apimw.RequestIDHeader, id)
		c.Next()
	}
}

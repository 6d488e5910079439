package api

import (
	"github.com/gin-gonic/gin"
)

type customerURI struct {
	ID int64 `binding:"required,min=1" uri:"id"`
}

type accountURI struct {
	No string `binding:"required,numeric" uri:"no"`
}

// abortWithError передает ошибку сервиса в middlewares.Errors, который подберет статус ответа.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	c.Abort()
}

// abortWithBindError ошибка разбора или валидации запроса, ответ 400.
func abortWithBindError(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	c.Abort()
}

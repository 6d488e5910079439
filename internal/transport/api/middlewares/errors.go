package middlewares

import (
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/gin-gonic/gin"
)

type ErrorKind string

const (
	KindNotFound       ErrorKind = "NotFound"
	KindValidation     ErrorKind = "Validation"
	KindBusinessRule   ErrorKind = "BusinessRule"
	KindInfrastructure ErrorKind = "Infrastructure"
	KindUnauthorized   ErrorKind = "Unauthorized"
	KindRateLimited    ErrorKind = "RateLimited"
)

// ErrorResponse тело ответа для любой ошибки API.
type ErrorResponse struct {
	ErrorKind ErrorKind `json:"errorKind"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func NewErrorResponse(kind ErrorKind, msg string) ErrorResponse {
	return ErrorResponse{ErrorKind: kind, Message: msg, Timestamp: time.Now().UTC()}
}

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusTooManyRequests:
		return "too many requests"
	case http.StatusServiceUnavailable:
		return "service unavailable"
	default:
		return "internal server error"
	}
}

// Classify сопоставляет доменную ошибку с http статусом и видом ошибки.
func Classify(err error) (int, ErrorKind) {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, KindNotFound
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, KindValidation
	case errors.Is(err, domain.ErrAccountClosed),
		errors.Is(err, domain.ErrAccountAlreadyClosed),
		errors.Is(err, domain.ErrInvalidAccountType):
		return http.StatusBadRequest, KindBusinessRule
	case errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusConflict, KindBusinessRule
	case errors.Is(err, domain.ErrServiceUnavailable),
		errors.Is(err, domain.ErrAccountNumberConflict):
		return http.StatusServiceUnavailable, KindInfrastructure
	default:
		return http.StatusInternalServerError, KindInfrastructure
	}
}

// publicErrors ошибки, текст которых можно отдать клиенту. Порядок важен: первая совпавшая побеждает.
var publicErrors = []error{
	domain.ErrCustomerNotFound,
	domain.ErrAccountNotFound,
	domain.ErrInvalidAmount,
	domain.ErrAccountClosed,
	domain.ErrAccountAlreadyClosed,
	domain.ErrInvalidAccountType,
	domain.ErrDuplicateKey,
	domain.ErrServiceUnavailable,
	domain.ErrAccountNumberConflict,
	domain.ErrRecordNotFound,
}

// PublicMessage текст ошибки для клиента. Обертки с контекстом операции и текстом ошибок базы
// остаются только в логе.
func PublicMessage(err error, status int) string {
	var balanceErr *domain.InsufficientBalanceError
	if errors.As(err, &balanceErr) {
		return balanceErr.Error()
	}
	for _, public := range publicErrors {
		if errors.Is(err, public) {
			return public.Error()
		}
	}
	if errors.Is(err, domain.ErrInsufficientBalance) {
		return domain.ErrInsufficientBalance.Error()
	}
	return statusErrorText(status)
}

// Errors пишет ответ для первой ошибки из c.Errors. Ошибки привязки запроса отдаются как 400,
// остальные классифицируются через Classify, клиенту уходит только PublicMessage.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// обрабатываем только первую ошибку
		firstErr := c.Errors[0]

		if firstErr.IsType(gin.ErrorTypeBind) {
			c.AbortWithStatusJSON(http.StatusBadRequest, NewErrorResponse(KindValidation, firstErr.Error()))
			return
		}

		status, kind := Classify(firstErr.Err)
		msg := PublicMessage(firstErr.Err, status)

		c.AbortWithStatusJSON(status, NewErrorResponse(kind, msg))
	}
}

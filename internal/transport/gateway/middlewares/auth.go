package middlewares

import (
	"errors"
	"net/http"
	"strings"

	apimw "github.com/fsdevblog/groph-bank/internal/transport/api/middlewares"
	"github.com/fsdevblog/groph-bank/internal/transport/gateway/tokens"
	"github.com/gin-gonic/gin"
)

var ErrTokenNotExist = errors.New("token not exist")

const (
	ClaimsKey = "userClaims"

	UserNameHeader = "X-User-Name"
	UserRoleHeader = "X-User-Role"
)

// BearerToken извлекает токен из заголовка Authorization. Если токен не передан, вернется ErrTokenNotExist.
func BearerToken(c *gin.Context) (string, error) {
	tokenHeader := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(tokenHeader, "Bearer ")
	if !ok || token == "" {
		return "", ErrTokenNotExist
	}
	return token, nil
}

const healthSegment = "/health"

// isPublicPath публичны пути с префиксом из publicPrefixes и пути, последний сегмент которых health.
func isPublicPath(path string, publicPrefixes []string) bool {
	if strings.HasSuffix(strings.TrimSuffix(path, "/"), healthSegment) {
		return true
	}
	for _, prefix := range publicPrefixes {
		if prefix != "" && strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// AuthRequired проверяет токен для всех путей кроме публичных. Claims записываются в контекст
// (ClaimsKey) и передаются дальше заголовками UserNameHeader и UserRoleHeader.
func AuthRequired(jwtTokenSecret []byte, publicPrefixes []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// клиент не должен подставлять эти заголовки сам.
		c.Request.Header.Del(UserNameHeader)
		c.Request.Header.Del(UserRoleHeader)

		if isPublicPath(c.Request.URL.Path, publicPrefixes) {
			c.Next()
			return
		}

		token, err := BearerToken(c)
		if err == nil {
			var claims *tokens.UserClaims
			claims, err = tokens.ValidateUserJWT(token, jwtTokenSecret)
			if err == nil {
				c.Set(ClaimsKey, claims)
				c.Request.Header.Set(UserNameHeader, claims.Subject)
				c.Request.Header.Set(UserRoleHeader, claims.Role)
				c.Next()
				return
			}
		}

		msg := "unauthorized"
		if !errors.Is(err, ErrTokenNotExist) {
			msg = "invalid or expired token"
			_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, apimw.NewErrorResponse(apimw.KindUnauthorized, msg))
	}
}

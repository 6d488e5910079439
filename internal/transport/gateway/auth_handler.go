package gateway

import (
	"errors"
	"net/http"
	"time"

	apimw "github.com/fsdevblog/groph-bank/internal/transport/api/middlewares"
	"github.com/fsdevblog/groph-bank/internal/transport/gateway/middlewares"
	"github.com/fsdevblog/groph-bank/internal/transport/gateway/tokens"
	"github.com/gin-gonic/gin"
)

type Authenticator interface {
	Authenticate(username, password string) (*User, error)
}

type AuthHandler struct {
	users     Authenticator
	secretKey []byte
	tokenTTL  time.Duration
}

func NewAuthHandler(users Authenticator, secretKey []byte, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{users: users, secretKey: secretKey, tokenTTL: tokenTTL}
}

type LoginParams struct {
	Username string `binding:"required,max=64"  json:"username"`
	Password string `binding:"required,max=255" json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Type     string `json:"type"`
	Username string `json:"username"`
	// ExpiresIn время жизни токена в миллисекундах.
	ExpiresIn int64 `json:"expiresIn"`
}

type ValidateResponse struct {
	Valid    bool   `json:"valid"`
	Message  string `json:"message"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Login POST AuthRouteGroup + LoginRoute. Аутентификация по паре логин/пароль.
func (h *AuthHandler) Login(c *gin.Context) {
	var params LoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusBadRequest, apimw.NewErrorResponse(apimw.KindValidation, bindErr.Error()))
		return
	}

	user, err := h.users.Authenticate(params.Username, params.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apimw.NewErrorResponse(apimw.KindUnauthorized, "invalid credentials"))
			return
		}
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			apimw.NewErrorResponse(apimw.KindInfrastructure, "internal server error"))
		return
	}

	token, err := tokens.GenerateUserJWT(user.Username, user.Role, h.tokenTTL, h.secretKey)
	if err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			apimw.NewErrorResponse(apimw.KindInfrastructure, "internal server error"))
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		Type:      "Bearer",
		Username:  user.Username,
		ExpiresIn: h.tokenTTL.Milliseconds(),
	})
}

// Validate GET AuthRouteGroup + ValidateRoute. Всегда отвечает 200, результат проверки в теле.
func (h *AuthHandler) Validate(c *gin.Context) {
	token, err := middlewares.BearerToken(c)
	if err != nil {
		c.JSON(http.StatusOK, ValidateResponse{Valid: false, Message: "Invalid token format"})
		return
	}

	claims, err := tokens.ValidateUserJWT(token, h.secretKey)
	if err != nil {
		c.JSON(http.StatusOK, ValidateResponse{Valid: false, Message: "Token is invalid or expired"})
		return
	}

	c.JSON(http.StatusOK, ValidateResponse{
		Valid:    true,
		Message:  "Token is valid",
		Username: claims.Subject,
		Role:     claims.Role,
	})
}

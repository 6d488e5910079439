// Package gateway входная точка для клиентов: аутентификация, ограничение частоты запросов и
// проксирование в сервисы банка.
package gateway

import (
	"net/http"
	"time"

	"github.com/fsdevblog/groph-bank/internal/metrics"
	apimw "github.com/fsdevblog/groph-bank/internal/transport/api/middlewares"
	"github.com/fsdevblog/groph-bank/internal/transport/gateway/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const (
	AuthRouteGroup = "/api/auth"
	LoginRoute     = "/login"
	ValidateRoute  = "/validate"
	HealthRoute    = "/health"
	MetricsRoute   = "/metrics"
)

const DefaultTokenTTL = 24 * time.Hour

type RouterArgs struct {
	Logger      *logrus.Logger
	Metrics     *metrics.HTTP
	Gatherer    prometheus.Gatherer
	Users       Authenticator
	Proxy       *Proxy
	RateLimiter *middlewares.IPRateLimiter
	// PublicPrefixes пути, доступные без токена.
	PublicPrefixes []string
	AllowOrigins   []string
	JWTSecretKey   []byte
	TokenTTL       time.Duration
}

func New(args RouterArgs) *gin.Engine {
	if args.TokenTTL <= 0 {
		args.TokenTTL = DefaultTokenTTL
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	if args.Logger != nil {
		r.Use(apimw.Logger(args.Logger))
	}
	if args.Metrics != nil {
		r.Use(apimw.Metrics(args.Metrics))
	}
	r.Use(cors.New(corsConfig(args.AllowOrigins)))
	if args.RateLimiter != nil {
		r.Use(middlewares.RateLimit(args.RateLimiter))
	}
	r.Use(middlewares.AuthRequired(args.JWTSecretKey, args.PublicPrefixes))

	r.GET(HealthRoute, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})
	if args.Gatherer != nil {
		r.GET(MetricsRoute, gin.WrapH(promhttp.HandlerFor(args.Gatherer, promhttp.HandlerOpts{})))
	}

	authHandler := NewAuthHandler(args.Users, args.JWTSecretKey, args.TokenTTL)
	auth := r.Group(AuthRouteGroup)
	auth.POST(LoginRoute, authHandler.Login)
	auth.GET(ValidateRoute, authHandler.Validate)

	// все остальное уходит в сервисы банка.
	if args.Proxy != nil {
		r.NoRoute(args.Proxy.Handle)
	}
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", apimw.RequestIDHeader)
	cfg.ExposeHeaders = []string{apimw.RequestIDHeader, "X-RateLimit-Limit"}
	return cfg
}

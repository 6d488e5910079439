package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	apimw "github.com/fsdevblog/groph-bank/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	CustomersPrefix = "/api/customers"
	AccountsPrefix  = "/api/accounts"
	ProcessesPrefix = "/api/processes"
)

// Upstreams базовые адреса сервисов, на которые проксируются запросы.
type Upstreams struct {
	Customers string
	Accounts  string
	Processes string
}

type proxyRoute struct {
	prefix string
	proxy  *httputil.ReverseProxy
}

type Proxy struct {
	routes []proxyRoute
	l      *logrus.Entry
}

func NewProxy(upstreams Upstreams, l *logrus.Logger) (*Proxy, error) {
	p := &Proxy{
		l: l.WithFields(logrus.Fields{
			"component": "gateway",
			"module":    "proxy",
		}),
	}
	for prefix, rawURL := range map[string]string{
		CustomersPrefix: upstreams.Customers,
		AccountsPrefix:  upstreams.Accounts,
		ProcessesPrefix: upstreams.Processes,
	} {
		target, err := url.Parse(rawURL)
		if err != nil || target.Scheme == "" || target.Host == "" {
			return nil, fmt.Errorf("invalid upstream url %q for %s", rawURL, prefix)
		}
		p.routes = append(p.routes, proxyRoute{prefix: prefix, proxy: p.newReverseProxy(target)})
	}
	return p, nil
}

func (p *Proxy) newReverseProxy(target *url.URL) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			p.l.WithError(err).WithFields(logrus.Fields{
				"path":     r.URL.Path,
				"upstream": target.Host,
			}).Error("upstream request failed")
			writeJSON(w, http.StatusBadGateway, apimw.NewErrorResponse(apimw.KindInfrastructure, "upstream unavailable"))
		},
	}
}

func (p *Proxy) match(path string) *httputil.ReverseProxy {
	for _, route := range p.routes {
		if path == route.prefix || strings.HasPrefix(path, route.prefix+"/") {
			return route.proxy
		}
	}
	return nil
}

// Handle проксирует запрос в сервис по префиксу пути, для неизвестных путей отвечает 404.
func (p *Proxy) Handle(c *gin.Context) {
	proxy := p.match(c.Request.URL.Path)
	if proxy == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, apimw.NewErrorResponse(apimw.KindNotFound, "route not found"))
		return
	}
	proxy.ServeHTTP(c.Writer, c.Request)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package gateway

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	RestaurantSvcURL string
	ActivitySvcURL   string
	FrontendDir      string
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	})
}

// hop-by-hop headers are not forwarded in either direction.
var hopHeaders = map[string]struct{}{
	"Connection":          {},
	"Keep-Alive":          {},
	"Proxy-Authenticate":  {},
	"Proxy-Authorization": {},
	"Te":                  {},
	"Trailer":             {},
	"Transfer-Encoding":   {},
	"Upgrade":             {},
}

func copyHeaders(dst, src http.Header) {
	for k, v := range src {
		if _, hop := hopHeaders[http.CanonicalHeaderKey(k)]; hop {
			continue
		}
		dst[k] = append([]string(nil), v...)
	}
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	target := strings.TrimRight(targetURL, "/") + r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	log.Debug().Str("method", r.Method).Str("target", target).Msg("proxying request")

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, r.Body)
	if err != nil {
		log.Error().Err(err).Str("target", target).Msg("failed to build upstream request")
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	copyHeaders(req.Header, r.Header)
	if ip := clientIP(r); ip != "" {
		req.Header.Set("X-Forwarded-For", ip)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("target", target).Msg("upstream unavailable")
		writeJSONError(w, http.StatusBadGateway, "upstream unavailable")
		return
	}
	defer resp.Body.Close()

	copyHeaders(w.Header(), resp.Header)
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Warn().Err(err).Str("target", target).Msg("failed to copy upstream response")
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return ""
	}
	return host
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (g *Gateway) upstreamFor(path string) string {
	if path == "/api/activity" || strings.HasPrefix(path, "/api/activity/") {
		return g.config.ActivitySvcURL
	}
	return g.config.RestaurantSvcURL
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	if strings.HasPrefix(path, "/api/") || path == "/api" {
		g.ProxyRequest(w, r, g.upstreamFor(path))
		return
	}
	http.ServeFile(w, r, filepath.Join(g.config.FrontendDir, "index.html"))
}

// StreamHandler forwards websocket upgrades to activity-svc.
func (g *Gateway) StreamHandler() http.Handler {
	target, err := url.Parse(g.config.ActivitySvcURL)
	if err != nil {
		log.Fatal().Err(err).Str("url", g.config.ActivitySvcURL).Msg("invalid ACTIVITY_SVC_URL")
	}
	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Error().Err(err).Msg("activity stream upstream unavailable")
		writeJSONError(w, http.StatusBadGateway, "upstream unavailable")
	}
	return proxy
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods(http.MethodGet)
	r.PathPrefix("/ws/").Handler(g.StreamHandler())
	r.PathPrefix("/api").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(g.config.FrontendDir))))
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}

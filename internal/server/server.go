package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/SaleBadge_Go/internal/database"
	"github.com/osse101/SaleBadge_Go/internal/handler"
	"github.com/osse101/SaleBadge_Go/internal/hooks"
	"github.com/osse101/SaleBadge_Go/internal/i18n"
	"github.com/osse101/SaleBadge_Go/internal/logger"
	"github.com/osse101/SaleBadge_Go/internal/metrics"
	"github.com/osse101/SaleBadge_Go/internal/salebadge"
)

// Options configures listening and authentication
type Options struct {
	Port           int
	APIKey         string
	AdminUser      string
	TrustedProxies []string
}

// Dependencies are the collaborators the routes are served by. A nil DBPool
// means the in-memory store is in use.
type Dependencies struct {
	DBPool     database.Pool
	Service    salebadge.Service
	Registry   hooks.Registry
	Nonces     handler.NonceManager
	Translator *i18n.Translator
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
	service    salebadge.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	// Storefront
	r.Get(handler.StylesheetPath, handler.HandleStylesheet(deps.Service.Stylesheet()))

	// Admin settings page
	settingsPage := handler.NewSettingsPageHandler(deps.Service, deps.Nonces, deps.Translator)
	r.Route(handler.SettingsPagePath, func(r chi.Router) {
		r.Use(BasicAuthMiddleware(opts.AdminUser, opts.APIKey, opts.TrustedProxies, detector))
		r.Get("/", settingsPage.HandleGet)
		r.Post("/", settingsPage.HandlePost)
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products/{"+handler.URLParamProductID+"}/sale-flash", handler.HandleSaleFlash(deps.Registry))

		settingsAPI := handler.NewSettingsAPIHandler(deps.Service)
		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", settingsAPI.HandleGetSettings)
				r.Put("/", settingsAPI.HandleUpdateSettings)
				r.Post("/preview", settingsAPI.HandlePreviewSettings)
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		dbPool:  deps.DBPool,
		service: deps.Service,
	}
}

// Handler returns the root router
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isUnlogged(path string) bool {
	for _, prefix := range UnloggedPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isUnlogged(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

package httpserver

import (
	"context"
	"embed"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/bryanwahyu/ia-decifra/internal/domain/apperror"
	"github.com/bryanwahyu/ia-decifra/internal/domain/document"
	"github.com/bryanwahyu/ia-decifra/internal/middleware"
)

//go:embed static/index.html
var staticFiles embed.FS

// Analyzer is the pipeline behind the two analysis endpoints.
type Analyzer interface {
	AnalyzeText(ctx context.Context, text string) (string, error)
	AnalyzeFile(ctx context.Context, up document.Upload) (string, error)
}

type Router struct {
	svc    Analyzer
	logger *zap.Logger
}

type analysisResponse struct {
	Analysis string `json:"analysis"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewRouter(svc Analyzer, metrics *middleware.Metrics, checkers map[string]middleware.HealthChecker, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Router{svc: svc, logger: logger}
	mux := chi.NewRouter()

	mux.Use(middleware.RequestID)
	mux.Use(middleware.Logging(logger))
	if metrics != nil {
		mux.Use(metrics.Middleware)
	}
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	mux.Get("/", r.handleIndex)
	mux.Get("/health", middleware.LivenessHandler)
	mux.Get("/healthz", middleware.HealthHandler(checkers))
	mux.Get("/readyz", middleware.ReadinessHandler)
	if metrics != nil {
		mux.Handle("/metrics", metrics.Handler())
	}

	mux.Route("/api/decifra", func(rt chi.Router) {
		rt.Post("/text", r.wrap(r.handleText))
		rt.Post("/file", r.wrap(r.handleFile))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap converts a handler error into {"error": ...} with the status of its kind.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			kind := apperror.KindOf(err)
			status := kind.HTTPStatus()
			fields := []zap.Field{
				zap.String("path", req.URL.Path),
				zap.Stringer("kind", kind),
				zap.Int("status", status),
				zap.String("request_id", middleware.GetRequestID(req.Context())),
				zap.Error(err),
			}
			if status >= http.StatusInternalServerError {
				r.logger.Error("request failed", fields...)
			} else {
				r.logger.Warn("request rejected", fields...)
			}
			writeJSON(w, status, errorResponse{Error: apperror.PublicMessage(err)})
		}
	}
}

// POST /api/decifra/text
// Body: {"text": "<legal text>"}
func (r *Router) handleText(w http.ResponseWriter, req *http.Request) error {
	text, err := acceptText(w, req)
	if err != nil {
		return err
	}
	analysis, err := r.svc.AnalyzeText(req.Context(), text)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, analysisResponse{Analysis: analysis})
	return nil
}

// POST /api/decifra/file
// Multipart form with a legal_file part (application/pdf or text/plain, max 10 MB).
func (r *Router) handleFile(w http.ResponseWriter, req *http.Request) error {
	up, err := acceptFile(w, req)
	if err != nil {
		return err
	}
	analysis, err := r.svc.AnalyzeFile(req.Context(), up)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, analysisResponse{Analysis: analysis})
	return nil
}

// GET /
func (r *Router) handleIndex(w http.ResponseWriter, req *http.Request) {
	page, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Package http exposes the JSON API: resource CRUD for study/expense logs
// and their category taxonomies, plus the summary, calendar and daily-detail
// aggregate views.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	applog "logbook/internal/log"
	"logbook/internal/metrics"
	"logbook/internal/ratelimit"
	"logbook/internal/services"
	"logbook/internal/storage"
)

// Server wires the router to the resource services.
type Server struct {
	http.Server

	studies    *services.StudyService
	expenses   *services.ExpenseService
	categories *services.CategoryService
	summaries  *services.SummaryService
	logger     *applog.Logger
}

// NewServer configures routes and middleware, returning a ready-to-run
// server. Unknown method/path combinations answer 404 with the structured
// error envelope, matching what clients get for a missing record.
func NewServer(
	addr string,
	studies *services.StudyService,
	expenses *services.ExpenseService,
	categories *services.CategoryService,
	summaries *services.SummaryService,
	logger *applog.Logger,
) *Server {
	s := &Server{
		studies:    studies,
		expenses:   expenses,
		categories: categories,
		summaries:  summaries,
		logger:     logger.WithComponent(applog.ComponentHTTP),
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.recover)
	r.Use(s.requestLogger)
	r.Use(httpMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	limiter := ratelimit.NewLimiter(ratelimit.DefaultConfig())
	r.Use(limiter.Middleware(nil, func(w http.ResponseWriter, r *http.Request) {
		metrics.RateLimited.Inc()
		w.Header().Set("Retry-After", "60")
		writeJSON(w, http.StatusTooManyRequests, errorBody{Error: "rate limit exceeded"})
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Not Found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Not Found"})
	})

	r.Get("/api/healthcheck", s.handleHealthcheck)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/study_logs", s.handleListStudyLogs)
		r.Post("/study_logs", s.handleCreateStudyLog)
		r.Patch("/study_logs/{id}", s.handleUpdateStudyLog)
		r.Delete("/study_logs/{id}", s.handleDeleteStudyLog)

		r.Get("/expense_logs", s.handleListExpenseLogs)
		r.Post("/expense_logs", s.handleCreateExpenseLog)
		r.Patch("/expense_logs/{id}", s.handleUpdateExpenseLog)
		r.Delete("/expense_logs/{id}", s.handleDeleteExpenseLog)

		r.Get("/expense_categories", s.handleListCategories(storage.ExpenseCategories))
		r.Post("/expense_categories", s.handleCreateCategory(storage.ExpenseCategories))
		r.Delete("/expense_categories/{name}", s.handleDeleteCategory(storage.ExpenseCategories))

		r.Get("/study_categories", s.handleListCategories(storage.StudyCategories))
		r.Post("/study_categories", s.handleCreateCategory(storage.StudyCategories))
		r.Delete("/study_categories/{name}", s.handleDeleteCategory(storage.StudyCategories))

		r.Get("/expense_summary", s.handleExpenseSummary)
		r.Get("/study_summary", s.handleStudySummary)
		r.Get("/daily_details", s.handleDailyDetails)
		r.Get("/calendar_data", s.handleCalendarData)
	})

	s.Server = http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.Server.RegisterOnShutdown(limiter.Stop)
	return s
}

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

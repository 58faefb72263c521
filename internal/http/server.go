package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"semaphore/masterdata/internal/config"
	"semaphore/masterdata/internal/repository"
)

type Server struct {
	cfg     config.Config
	repo    repository.Repository
	log     zerolog.Logger
	now     func() time.Time
	metrics *metrics
}

func NewServer(cfg config.Config, repo repository.Repository, log zerolog.Logger) *Server {
	return &Server{
		cfg:     cfg,
		repo:    repo,
		log:     log.With().Str("component", "http").Logger(),
		now:     func() time.Time { return time.Now().UTC() },
		metrics: newMetrics(),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID, s.accessLog, middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/ready", s.handleReady)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	r.Get("/guru/list-guru", s.handleListTeachers)
	r.Get("/guru/get-guru", s.handleGetTeacher)
	r.Get("/kelas/list-kelas", s.handleListClasses)
	r.Get("/kelas/get-kelas", s.handleGetClass)
	r.Get("/matapelajaran/list-mapel", s.handleListSubjects)
	r.Get("/matapelajaran/{id}", s.handleGetSubject)
	r.Get("/student/list-student", s.handleListStudents)
	r.Get("/student/get-student", s.handleGetStudent)

	r.Group(func(r chi.Router) {
		if s.cfg.JWTSecret != "" {
			r.Use(s.authMiddleware, s.requireWriter)
		}

		r.Post("/guru/add-guru", s.handleCreateTeacher)
		r.Post("/guru/edit-guru", s.handleUpdateTeacher)
		r.Delete("/guru/hapus-guru/{id}", s.handleDeleteTeacher)

		r.Post("/kelas/post-kelas", s.handleCreateClass)
		r.Put("/kelas/{id}", s.handleUpdateClass)
		r.Delete("/kelas/{id}", s.handleDeleteClass)

		r.Post("/matapelajaran/post-mapel", s.handleCreateSubject)
		r.Put("/matapelajaran/update-mapel/{id}", s.handleUpdateSubject)
		r.Delete("/matapelajaran/delete-mapel/{id}", s.handleDeleteSubject)

		r.Post("/student/add-student", s.handleCreateStudent)
		r.Put("/student/edit-student", s.handleUpdateStudent)
		r.Delete("/student/hapus-student/{id}", s.handleDeleteStudent)
	})

	return r
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := s.repo.Ping(ctx); err != nil {
		s.log.Warn().Err(err).Msg("readiness check failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "masterdata",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "masterdata",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	m.registry.MustRegister(
		m.requests,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// primary returns the store behind any read cache. Update handlers load the
// current row from it before applying the supplied fields.
func (s *Server) primary() repository.Repository {
	if c, ok := s.repo.(interface{ Uncached() repository.Repository }); ok {
		return c.Uncached()
	}
	return s.repo
}

// modifiedAt returns the timestamp for an update, never earlier than prev.
func (s *Server) modifiedAt(prev time.Time) time.Time {
	now := s.now()
	if now.Before(prev) {
		return prev
	}
	return now
}

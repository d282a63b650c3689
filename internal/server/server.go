package server

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lathe-dev/lathe/internal/archive"
	"github.com/lathe-dev/lathe/internal/config"
	"github.com/lathe-dev/lathe/internal/errors"
	"github.com/lathe-dev/lathe/internal/scaffold"
	"github.com/lathe-dev/lathe/internal/template"
)

// Server is the Lathe web server.
type Server struct {
	cfg       *config.Config
	registry  *template.Registry
	store     archive.Store
	hub       *ProgressHub
	outputDir string
	metrics   *metrics
	gatherer  prometheus.Gatherer
	router    chi.Router
	log       *slog.Logger
	startedAt time.Time
}

type serverOptions struct {
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
}

// Option configures the server.
type Option func(*serverOptions)

// WithMetricsRegistry sets the Prometheus registry used for server
// metrics. Defaults to the process-global registry.
func WithMetricsRegistry(reg *prometheus.Registry) Option {
	return func(o *serverOptions) {
		o.registerer = reg
		o.gatherer = reg
	}
}

// New creates a web server. Generated projects land under outputDir and
// their archives are kept in store.
func New(cfg *config.Config, registry *template.Registry, store archive.Store, outputDir string, opts ...Option) *Server {
	o := serverOptions{
		registerer: prometheus.DefaultRegisterer,
		gatherer:   prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Server{
		cfg:       cfg,
		registry:  registry,
		store:     store,
		hub:       NewProgressHub(),
		outputDir: outputDir,
		metrics:   newMetrics(o.registerer),
		gatherer:  o.gatherer,
		log:       slog.Default().With("component", "server"),
		startedAt: time.Now(),
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler, for mounting or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub returns the progress hub.
func (s *Server) Hub() *ProgressHub {
	return s.hub
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return errors.New("E080").WithPath(addr).Wrap(err)
	}

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	s.log.Info("server listening", "addr", addr)

	select {
	case <-ctx.Done():
		s.hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(s.trackInFlight)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	r.Get("/ws/progress", s.hub.HandleWebSocket)

	r.Route("/api", func(r chi.Router) {
		r.Get("/templates", s.handleListTemplates)
		r.Post("/templates", s.handleCreateTemplate)
		r.Get("/templates/{name}", s.handleGetTemplate)
		r.Post("/generate", s.handleGenerate)
		r.Get("/archives/{id}", s.handleDownloadArchive)
		r.Get("/config", s.handleGetConfig)
		r.Patch("/config", s.handleUpdateConfig)
	})

	return r
}

func (s *Server) trackInFlight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.metrics.httpInFlight.Inc()
		defer s.metrics.httpInFlight.Dec()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.startedAt).Round(time.Second).String(),
	})
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.registry.List()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl, err := s.registry.Get(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tmpl)
}

func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var in template.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeError(w, errors.New("E003").Wrap(err))
		return
	}
	if in.Author == "" {
		in.Author = s.cfg.DefaultAuthor
	}

	tmpl, err := s.registry.Create(in)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tmpl)
}

// generateResponse is the body returned by POST /api/generate.
type generateResponse struct {
	Job         string   `json:"job"`
	Project     string   `json:"project"`
	Template    string   `json:"template"`
	Files       []string `json:"files"`
	Archive     string   `json:"archive"`
	DownloadURL string   `json:"downloadUrl"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req scaffold.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.New("E001").Wrap(err))
		return
	}
	req.TargetDir = s.outputDir
	if req.PackageManager == "" {
		req.PackageManager = s.cfg.DefaultPackageManager
	}
	if req.Framework == "" {
		req.Framework = s.cfg.DefaultFramework
	}

	job := uuid.NewString()
	gen := scaffold.NewGenerator(s.registry, scaffold.WithProgress(func(stage, detail string) {
		s.hub.NotifyStage(job, stage, detail)
	}))

	// Bound each job so a wedged disk cannot hold the request open forever.
	ctx, cancel := context.WithTimeout(r.Context(), time.Minute)
	defer cancel()

	start := time.Now()
	result, err := gen.Generate(ctx, req)
	s.metrics.recordGeneration(req.Framework, err, time.Since(start).Seconds())
	if err != nil {
		s.hub.NotifyError(job, err.Error())
		s.writeError(w, err)
		return
	}
	for _, feature := range req.Features {
		s.metrics.featuresApplied.WithLabelValues(feature).Inc()
	}

	archiveID, err := s.buildArchive(result)
	if err != nil {
		s.hub.NotifyError(job, err.Error())
		s.writeError(w, err)
		return
	}
	s.metrics.archivesBuilt.Inc()
	s.hub.NotifyDone(job, archiveID)

	s.log.Info("generation served",
		"job", job,
		"project", req.Name,
		"framework", req.Framework,
		"archive", archiveID,
	)

	writeJSON(w, http.StatusOK, generateResponse{
		Job:         job,
		Project:     result.ProjectPath,
		Template:    result.Template,
		Files:       result.FilesWritten,
		Archive:     archiveID,
		DownloadURL: "/api/archives/" + archiveID,
	})
}

// buildArchive zips the generated project tree and stores it.
func (s *Server) buildArchive(result *scaffold.Result) (string, error) {
	var buf bytes.Buffer
	if err := archive.Build(&buf, result.ProjectPath); err != nil {
		return "", errors.New("E081").WithPath(result.ProjectPath).Wrap(err)
	}
	id, err := s.store.Save(result.Manifest.Name, &buf)
	if err != nil {
		return "", errors.New("E081").Wrap(err)
	}
	return id, nil
}

func (s *Server) handleDownloadArchive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	a, err := s.store.Open(id)
	if err != nil {
		if stderrors.Is(err, archive.ErrNotFound) {
			s.writeError(w, errors.New("E022").WithPath(id))
			return
		}
		s.writeError(w, errors.New("E081").WithPath(id).Wrap(err))
		return
	}
	defer a.Close()

	// Remote stores hand out a presigned URL instead of a reader.
	if a.URL != "" {
		http.Redirect(w, r, a.URL, http.StatusTemporaryRedirect)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+a.Project+`.zip"`)
	w.Header().Set("Content-Length", strconv.FormatInt(a.Size, 10))
	io.Copy(w, a.Reader)
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cfg)
}

func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.writeError(w, errors.New("E060").Wrap(err))
		return
	}
	if err := s.cfg.Update(patch); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.cfg)
}

// errorResponse is the body returned for failed requests.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	le := errors.FromError(err, "E081")

	status := http.StatusInternalServerError
	switch {
	case errors.IsValidation(err):
		status = http.StatusBadRequest
	case errors.IsNotFound(err):
		status = http.StatusNotFound
	case errors.IsTimeout(err):
		status = http.StatusRequestTimeout
	case errors.IsConfig(err):
		status = http.StatusBadRequest
	}

	s.log.Warn("request failed", "code", le.Code, "error", err)
	writeJSON(w, status, errorResponse{Error: le.Message, Code: le.Code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

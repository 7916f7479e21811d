// Package httpapi is the chi HTTP transport for the search API.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/nkuhub/infosearch/internal/domain"
	domhistory "github.com/nkuhub/infosearch/internal/domain/history"
	domprofile "github.com/nkuhub/infosearch/internal/domain/profile"
	"github.com/nkuhub/infosearch/internal/domain/search/mode"
	"github.com/nkuhub/infosearch/internal/domain/search/page"
	"github.com/nkuhub/infosearch/internal/domain/search/request"
	"github.com/nkuhub/infosearch/internal/domain/search/scope"
	"github.com/nkuhub/infosearch/internal/domain/search/sortby"
	healthuc "github.com/nkuhub/infosearch/internal/usecase/health"
	searchuc "github.com/nkuhub/infosearch/internal/usecase/search"
	suggestuc "github.com/nkuhub/infosearch/internal/usecase/suggest"
)

// ProfileStore reads and writes user profiles.
type ProfileStore interface {
	Get(ctx context.Context, username string) (domprofile.Profile, error)
	Save(ctx context.Context, p *domprofile.Profile) error
}

// HistoryReader lists recorded searches, newest first.
type HistoryReader interface {
	List(ctx context.Context, username string, limit int) ([]domhistory.Entry, error)
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the HTTP handlers over the use case services.
type Server struct {
	search        *searchuc.Service
	suggest       *suggestuc.Service
	profiles      ProfileStore
	history       HistoryReader
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	suggest *suggestuc.Service,
	profiles ProfileStore,
	history HistoryReader,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:   search,
		suggest:  suggest,
		profiles: profiles,
		history:  history,
		health:   health,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrProfileNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrEngineUnavailable, http.StatusBadGateway, codeEngineUnavailable),
	}
	return s
}

// Routes mounts all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/api/v1/search", s.handleSearch)
	r.Get("/api/v1/suggest", s.handleSuggest)
	r.Get("/api/v1/profiles/{username}", s.handleGetProfile)
	r.Put("/api/v1/profiles/{username}", s.handlePutProfile)
	r.Get("/api/v1/history/{username}", s.handleHistory)
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// handleSearch handles GET /api/v1/search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	text := strings.TrimSpace(q.Get("q"))
	if text == "" {
		// An empty query is not an error from the user's point of view:
		// the search box simply has nothing in it yet.
		writeJSON(w, http.StatusOK, page.Page{Items: []page.Record{}})
		return
	}

	pageNum := 1
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "page must be a positive integer")
			return
		}
		pageNum = n
	}

	personalize := false
	if raw := q.Get("personalized"); raw != "" {
		p, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "personalized must be a boolean")
			return
		}
		personalize = p
	}

	req, err := request.New(
		text,
		mode.Mode(q.Get("mode")),
		scope.Scope(q.Get("scope")),
		sortby.Sort(q.Get("sort")),
		q["filetypes"],
		personalize,
		pageNum,
		q.Get("username"),
	)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	result, err := s.search.Search(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if result.Items == nil {
		result.Items = []page.Record{}
	}

	writeJSON(w, http.StatusOK, result)
}

// handleSuggest handles GET /api/v1/suggest.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	completions := s.suggest.Suggest(r.Context(), r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, completions)
}

// handleGetProfile handles GET /api/v1/profiles/{username}.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	p, err := s.profiles.Get(r.Context(), username)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profileToPayload(p))
}

// handlePutProfile handles PUT /api/v1/profiles/{username}.
func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var in profilePayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	p := profileFromPayload(username, in)
	if err := s.profiles.Save(r.Context(), &p); err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profileToPayload(p))
}

// handleHistory handles GET /api/v1/history/{username}.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	entries, err := s.history.List(r.Context(), username, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if entries == nil {
		entries = []domhistory.Entry{}
	}

	writeJSON(w, http.StatusOK, entries)
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for name, result := range report.Checks {
		checks[name] = string(result)
	}

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, healthResponse{Status: string(report.Status), Checks: checks})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidRequest,
		domain.ErrProfileNotFound,
		domain.ErrNotFound,
		domain.ErrEngineUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

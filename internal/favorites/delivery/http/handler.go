package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/bookstore-backend/internal/favorites/usecase/command"
	"github.com/tair/bookstore-backend/internal/favorites/usecase/query"
	userhttp "github.com/tair/bookstore-backend/internal/user/delivery/http"
	"github.com/tair/bookstore-backend/pkg/apperr"
	"github.com/tair/bookstore-backend/pkg/cache"
	"github.com/tair/bookstore-backend/pkg/logger"
)

// FavoritesHandler handles HTTP requests for the favorites ledger
type FavoritesHandler struct {
	addHandler    *command.AddFavoriteHandler
	removeHandler *command.RemoveFavoriteHandler
	listHandler   *query.ListFavoritesHandler

	catalogCache *cache.ResponseCache

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(
	addHandler *command.AddFavoriteHandler,
	removeHandler *command.RemoveFavoriteHandler,
	listHandler *query.ListFavoritesHandler,
	catalogCache *cache.ResponseCache,
) *FavoritesHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookstore_favorites_requests_total",
			Help: "Total number of requests to favorites endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookstore_favorites_request_duration_seconds",
			Help:    "Duration of favorites endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &FavoritesHandler{
		addHandler:     addHandler,
		removeHandler:  removeHandler,
		listHandler:    listHandler,
		catalogCache:   catalogCache,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *FavoritesHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// Add handles POST /favorites/{bookId}
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	user, _ := userhttp.UserFromContext(r.Context())
	bookID := mux.Vars(r)["bookId"]

	cmd := command.AddFavoriteCommand{UserID: user.ID, BookID: bookID}
	if err := h.addHandler.Handle(r.Context(), cmd); err != nil {
		respondAppError(w, err)
		return
	}

	h.invalidateCatalog(r)
	respondJSON(w, http.StatusCreated, map[string]string{"message": "book added to favorites"})
}

// Remove handles DELETE /favorites/{bookId}
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user, _ := userhttp.UserFromContext(r.Context())
	bookID := mux.Vars(r)["bookId"]

	cmd := command.RemoveFavoriteCommand{UserID: user.ID, BookID: bookID}
	if err := h.removeHandler.Handle(r.Context(), cmd); err != nil {
		respondAppError(w, err)
		return
	}

	h.invalidateCatalog(r)
	respondJSON(w, http.StatusOK, map[string]string{"message": "book removed from favorites"})
}

// List handles GET /favorites
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := userhttp.UserFromContext(r.Context())

	books, err := h.listHandler.Handle(r.Context(), query.ListFavoritesQuery{UserID: user.ID})
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, books)
}

// invalidateCatalog drops cached catalog responses after a favorites
// mutation changed favorites_count / is_favorite annotations.
func (h *FavoritesHandler) invalidateCatalog(r *http.Request) {
	if err := h.catalogCache.Invalidate(r.Context()); err != nil {
		logger.Warn(r.Context()).Err(err).Msg("failed to invalidate catalog cache")
	}
}

// RegisterRoutes registers favorites routes
func (h *FavoritesHandler) RegisterRoutes(router *mux.Router, mw *userhttp.Middleware) {
	router.HandleFunc("/favorites", h.metricsMiddleware("/favorites", mw.Required(h.List))).Methods("GET")
	router.HandleFunc("/favorites/{bookId}", h.metricsMiddleware("/favorites/{bookId}", mw.Required(h.Add))).Methods("POST")
	router.HandleFunc("/favorites/{bookId}", h.metricsMiddleware("/favorites/{bookId}", mw.Required(h.Remove))).Methods("DELETE")
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondAppError(w http.ResponseWriter, err error) {
	respondJSON(w, apperr.HTTPStatus(err), map[string]string{"error": apperr.MessageOf(err)})
}

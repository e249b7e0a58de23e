package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/bookstore-backend/internal/requests/usecase/command"
	"github.com/tair/bookstore-backend/internal/requests/usecase/query"
	userhttp "github.com/tair/bookstore-backend/internal/user/delivery/http"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

// RequestsHandler handles HTTP requests for the book request workflow
type RequestsHandler struct {
	createHandler *command.CreateRequestHandler
	updateHandler *command.UpdateRequestStatusHandler
	deleteHandler *command.DeleteRequestHandler
	listHandler   *query.ListRequestsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewRequestsHandler creates a new book requests handler
func NewRequestsHandler(
	createHandler *command.CreateRequestHandler,
	updateHandler *command.UpdateRequestStatusHandler,
	deleteHandler *command.DeleteRequestHandler,
	listHandler *query.ListRequestsHandler,
) *RequestsHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookstore_book_requests_total",
			Help: "Total number of requests to book request endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookstore_book_request_duration_seconds",
			Help:    "Duration of book request endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &RequestsHandler{
		createHandler:  createHandler,
		updateHandler:  updateHandler,
		deleteHandler:  deleteHandler,
		listHandler:    listHandler,
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

func (h *RequestsHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// Create handles POST /requests
func (h *RequestsHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, _ := userhttp.UserFromContext(r.Context())

	var req struct {
		Title      string `json:"title"`
		AuthorName string `json:"author_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.CreateRequestCommand{
		UserID:     user.ID,
		Title:      req.Title,
		AuthorName: req.AuthorName,
	}
	request, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, request)
}

// List handles GET /requests
func (h *RequestsHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := userhttp.UserFromContext(r.Context())

	q := query.ListRequestsQuery{UserID: user.ID, All: user.IsAdmin()}
	requests, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, requests)
}

// UpdateStatus handles PUT /admin/requests/{id}
func (h *RequestsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.updateHandler.Handle(r.Context(), command.UpdateRequestStatusCommand{
		ID:     id,
		Status: req.Status,
	})
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, request)
}

// Delete handles DELETE /admin/requests/{id}
func (h *RequestsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteRequestCommand{ID: id}); err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "book request deleted"})
}

func requestID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}

// RegisterRoutes registers book request routes
func (h *RequestsHandler) RegisterRoutes(router *mux.Router, mw *userhttp.Middleware) {
	router.HandleFunc("/requests", h.metricsMiddleware("/requests", mw.Required(h.Create))).Methods("POST")
	router.HandleFunc("/requests", h.metricsMiddleware("/requests", mw.Required(h.List))).Methods("GET")

	router.HandleFunc("/admin/requests/{id}", h.metricsMiddleware("/admin/requests/{id}", mw.AdminOnly(h.UpdateStatus))).Methods("PUT")
	router.HandleFunc("/admin/requests/{id}", h.metricsMiddleware("/admin/requests/{id}", mw.AdminOnly(h.Delete))).Methods("DELETE")
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondAppError(w http.ResponseWriter, err error) {
	respondError(w, apperr.HTTPStatus(err), apperr.MessageOf(err))
}

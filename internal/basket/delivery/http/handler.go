package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/bookstore-backend/internal/basket/usecase/command"
	"github.com/tair/bookstore-backend/internal/basket/usecase/query"
	userhttp "github.com/tair/bookstore-backend/internal/user/delivery/http"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

// BasketHandler handles HTTP requests for the basket
type BasketHandler struct {
	addHandler      *command.AddItemHandler
	removeHandler   *command.RemoveItemHandler
	purchaseHandler *command.PurchaseHandler
	getHandler      *query.GetBasketHandler

	requestCounter  *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	purchaseCounter prometheus.Counter
}

// NewBasketHandler creates a new basket handler
func NewBasketHandler(
	addHandler *command.AddItemHandler,
	removeHandler *command.RemoveItemHandler,
	purchaseHandler *command.PurchaseHandler,
	getHandler *query.GetBasketHandler,
) *BasketHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookstore_basket_requests_total",
			Help: "Total number of requests to basket endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookstore_basket_request_duration_seconds",
			Help:    "Duration of basket endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	purchaseCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bookstore_basket_purchases_total",
			Help: "Total number of completed basket purchases",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(purchaseCounter)

	return &BasketHandler{
		addHandler:      addHandler,
		removeHandler:   removeHandler,
		purchaseHandler: purchaseHandler,
		getHandler:      getHandler,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
		purchaseCounter: purchaseCounter,
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

func (h *BasketHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// Add handles POST /basket
func (h *BasketHandler) Add(w http.ResponseWriter, r *http.Request) {
	user, _ := userhttp.UserFromContext(r.Context())

	var req struct {
		BookID   string `json:"book_id"`
		Quantity int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.AddItemCommand{
		UserID:   user.ID,
		BookID:   req.BookID,
		Quantity: req.Quantity,
	}

	item, err := h.addHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// Get handles GET /basket
func (h *BasketHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, _ := userhttp.UserFromContext(r.Context())

	items, err := h.getHandler.Handle(r.Context(), query.GetBasketQuery{UserID: user.ID})
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// Remove handles DELETE /basket/{bookId}. The purge query parameter
// deletes the row instead of soft-removing it.
func (h *BasketHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user, _ := userhttp.UserFromContext(r.Context())

	cmd := command.RemoveItemCommand{
		UserID: user.ID,
		BookID: mux.Vars(r)["bookId"],
		Purge:  r.URL.Query().Get("purge") == "true",
	}

	if err := h.removeHandler.Handle(r.Context(), cmd); err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "book removed from basket"})
}

// Purchase handles POST /basket/purchase
func (h *BasketHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	user, _ := userhttp.UserFromContext(r.Context())

	result, err := h.purchaseHandler.Handle(r.Context(), command.PurchaseCommand{UserID: user.ID})
	if err != nil {
		respondAppError(w, err)
		return
	}

	h.purchaseCounter.Inc()
	respondJSON(w, http.StatusOK, result)
}

// RegisterRoutes registers basket routes
func (h *BasketHandler) RegisterRoutes(router *mux.Router, mw *userhttp.Middleware) {
	router.HandleFunc("/basket", h.metricsMiddleware("/basket", mw.Required(h.Get))).Methods("GET")
	router.HandleFunc("/basket", h.metricsMiddleware("/basket", mw.Required(h.Add))).Methods("POST")
	router.HandleFunc("/basket/purchase", h.metricsMiddleware("/basket/purchase", mw.Required(h.Purchase))).Methods("POST")
	router.HandleFunc("/basket/{bookId}", h.metricsMiddleware("/basket/{bookId}", mw.Required(h.Remove))).Methods("DELETE")
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

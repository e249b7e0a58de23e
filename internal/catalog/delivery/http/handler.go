package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/bookstore-backend/internal/catalog/domain"
	"github.com/tair/bookstore-backend/internal/catalog/usecase/command"
	"github.com/tair/bookstore-backend/internal/catalog/usecase/query"
	userhttp "github.com/tair/bookstore-backend/internal/user/delivery/http"
	"github.com/tair/bookstore-backend/pkg/apperr"
	"github.com/tair/bookstore-backend/pkg/cache"
	"github.com/tair/bookstore-backend/pkg/logger"
)

// CatalogHandler handles HTTP requests for the catalog: public shop
// reads and admin CRUD over books, authors and genres.
type CatalogHandler struct {
	createBookHandler   *command.CreateBookHandler
	updateBookHandler   *command.UpdateBookHandler
	deleteBookHandler   *command.DeleteBookHandler
	createAuthorHandler *command.CreateAuthorHandler
	updateAuthorHandler *command.UpdateAuthorHandler
	deleteAuthorHandler *command.DeleteAuthorHandler
	createGenreHandler  *command.CreateGenreHandler
	updateGenreHandler  *command.UpdateGenreHandler
	deleteGenreHandler  *command.DeleteGenreHandler

	getBookHandler     *query.GetBookHandler
	listBooksHandler   *query.ListBooksHandler
	listAuthorsHandler *query.ListAuthorsHandler
	getAuthorHandler   *query.GetAuthorHandler
	listGenresHandler  *query.ListGenresHandler

	catalogCache *cache.ResponseCache

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	totalBooks     prometheus.Gauge
	books          domain.BookRepository
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	books domain.BookRepository,
	authors domain.AuthorRepository,
	genres domain.GenreRepository,
	favorites domain.FavoriteChecker,
	catalogCache *cache.ResponseCache,
) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookstore_catalog_requests_total",
			Help: "Total number of requests to catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookstore_catalog_request_duration_seconds",
			Help:    "Duration of catalog endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	totalBooks := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "bookstore_catalog_books",
			Help: "Number of books in the catalog",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(totalBooks)

	return &CatalogHandler{
		createBookHandler:   command.NewCreateBookHandler(books, authors, genres),
		updateBookHandler:   command.NewUpdateBookHandler(books, authors, genres),
		deleteBookHandler:   command.NewDeleteBookHandler(books),
		createAuthorHandler: command.NewCreateAuthorHandler(authors),
		updateAuthorHandler: command.NewUpdateAuthorHandler(authors),
		deleteAuthorHandler: command.NewDeleteAuthorHandler(authors),
		createGenreHandler:  command.NewCreateGenreHandler(genres),
		updateGenreHandler:  command.NewUpdateGenreHandler(genres),
		deleteGenreHandler:  command.NewDeleteGenreHandler(genres),
		getBookHandler:      query.NewGetBookHandler(books, favorites),
		listBooksHandler:    query.NewListBooksHandler(books, favorites),
		listAuthorsHandler:  query.NewListAuthorsHandler(authors),
		getAuthorHandler:    query.NewGetAuthorHandler(authors),
		listGenresHandler:   query.NewListGenresHandler(genres),
		catalogCache:        catalogCache,
		requestCounter:      requestCounter,
		requestLatency:      requestLatency,
		totalBooks:          totalBooks,
		books:               books,
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

func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// --- SHOP (public) ---

// ListBooks handles GET /shop
func (h *CatalogHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	filter := domain.BookFilter{Title: r.URL.Query().Get("title")}

	if v := r.URL.Query().Get("genre_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			genreID := uint(id)
			filter.GenreID = &genreID
		}
	}
	if v := r.URL.Query().Get("author_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			authorID := uint(id)
			filter.AuthorID = &authorID
		}
	}
	if v := r.URL.Query().Get("year"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			filter.Year = &year
		}
	}
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	filter.Offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))

	q := query.ListBooksQuery{Filter: filter, UserID: currentUserID(r)}
	books, err := h.listBooksHandler.Handle(r.Context(), q)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, books)
}

// GetBook handles GET /shop/{bookId}
func (h *CatalogHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	q := query.GetBookQuery{ID: mux.Vars(r)["bookId"], UserID: currentUserID(r)}
	book, err := h.getBookHandler.Handle(r.Context(), q)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, book)
}

// ListAuthors handles GET /authors
func (h *CatalogHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	authors, err := h.listAuthorsHandler.Handle(query.ListAuthorsQuery{Limit: limit, Offset: offset})
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, authors)
}

// GetAuthor handles GET /authors/{id}
func (h *CatalogHandler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid author id")
		return
	}

	author, err := h.getAuthorHandler.Handle(query.GetAuthorQuery{ID: uint(id)})
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, author)
}

// ListGenres handles GET /genres
func (h *CatalogHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.listGenresHandler.Handle(query.ListGenresQuery{})
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, genres)
}

// --- ADMIN ---

type bookRequest struct {
	ID          string   `json:"id"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	GenreID     *uint    `json:"genre_id"`
	AuthorID    *uint    `json:"author_id"`
	ReleaseDate *string  `json:"release_date"`
	Price       *float64 `json:"price"`
	Img         *string  `json:"img"`
}

func parseReleaseDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, apperr.BadRequest("release_date must be YYYY-MM-DD")
	}
	return &t, nil
}

// CreateBook handles POST /admin/books
func (h *CatalogHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	releaseDate, err := parseReleaseDate(req.ReleaseDate)
	if err != nil {
		respondAppError(w, err)
		return
	}

	cmd := command.CreateBookCommand{
		ID:          req.ID,
		GenreID:     req.GenreID,
		ReleaseDate: releaseDate,
	}
	if req.Title != nil {
		cmd.Title = *req.Title
	}
	if req.Description != nil {
		cmd.Description = *req.Description
	}
	if req.AuthorID != nil {
		cmd.AuthorID = *req.AuthorID
	}
	if req.Price != nil {
		cmd.Price = *req.Price
	}
	if req.Img != nil {
		cmd.Img = *req.Img
	}

	book, err := h.createBookHandler.Handle(cmd)
	if err != nil {
		respondAppError(w, err)
		return
	}

	h.invalidateCatalog(r)
	h.updateBooksMetric()
	respondJSON(w, http.StatusCreated, book)
}

// UpdateBook handles PUT /admin/books/{bookId}
func (h *CatalogHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	releaseDate, err := parseReleaseDate(req.ReleaseDate)
	if err != nil {
		respondAppError(w, err)
		return
	}

	cmd := command.UpdateBookCommand{
		ID:          mux.Vars(r)["bookId"],
		Title:       req.Title,
		Description: req.Description,
		GenreID:     req.GenreID,
		AuthorID:    req.AuthorID,
		ReleaseDate: releaseDate,
		Price:       req.Price,
		Img:         req.Img,
	}

	book, err := h.updateBookHandler.Handle(cmd)
	if err != nil {
		respondAppError(w, err)
		return
	}

	h.invalidateCatalog(r)
	respondJSON(w, http.StatusOK, book)
}

// DeleteBook handles DELETE /admin/books/{bookId}
func (h *CatalogHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	if err := h.deleteBookHandler.Handle(command.DeleteBookCommand{ID: mux.Vars(r)["bookId"]}); err != nil {
		respondAppError(w, err)
		return
	}

	h.invalidateCatalog(r)
	h.updateBooksMetric()
	respondJSON(w, http.StatusOK, map[string]string{"message": "book deleted"})
}

// CreateAuthor handles POST /admin/authors
func (h *CatalogHandler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Info string `json:"info"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	author, err := h.createAuthorHandler.Handle(command.CreateAuthorCommand{Name: req.Name, Info: req.Info})
	if err != nil {
		respondAppError(w, err)
		return
	}

	h.invalidateCatalog(r)
	respondJSON(w, http.StatusCreated, author)
}

// UpdateAuthor handles PUT /admin/authors/{id}
func (h *CatalogHandler) UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid author id")
		return
	}

	var req struct {
		Name *string `json:"name"`
		Info *string `json:"info"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	author, err := h.updateAuthorHandler.Handle(command.UpdateAuthorCommand{ID: uint(id), Name: req.Name, Info: req.Info})
	if err != nil {
		respondAppError(w, err)
		return
	}

	h.invalidateCatalog(r)
	respondJSON(w, http.StatusOK, author)
}

// DeleteAuthor handles DELETE /admin/authors/{id}
func (h *CatalogHandler) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid author id")
		return
	}

	if err := h.deleteAuthorHandler.Handle(command.DeleteAuthorCommand{ID: uint(id)}); err != nil {
		respondAppError(w, err)
		return
	}

	h.invalidateCatalog(r)
	respondJSON(w, http.StatusOK, map[string]string{"message": "author deleted"})
}

// CreateGenre handles POST /admin/genres
func (h *CatalogHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Img  string `json:"img"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	genre, err := h.createGenreHandler.Handle(command.CreateGenreCommand{Name: req.Name, Img: req.Img})
	if err != nil {
		respondAppError(w, err)
		return
	}

	h.invalidateCatalog(r)
	respondJSON(w, http.StatusCreated, genre)
}

// UpdateGenre handles PUT /admin/genres/{id}
func (h *CatalogHandler) UpdateGenre(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid genre id")
		return
	}

	var req struct {
		Name *string `json:"name"`
		Img  *string `json:"img"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	genre, err := h.updateGenreHandler.Handle(command.UpdateGenreCommand{ID: uint(id), Name: req.Name, Img: req.Img})
	if err != nil {
		respondAppError(w, err)
		return
	}

	h.invalidateCatalog(r)
	respondJSON(w, http.StatusOK, genre)
}

// DeleteGenre handles DELETE /admin/genres/{id}
func (h *CatalogHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid genre id")
		return
	}

	if err := h.deleteGenreHandler.Handle(command.DeleteGenreCommand{ID: uint(id)}); err != nil {
		respondAppError(w, err)
		return
	}

	h.invalidateCatalog(r)
	respondJSON(w, http.StatusOK, map[string]string{"message": "genre deleted"})
}

func (h *CatalogHandler) invalidateCatalog(r *http.Request) {
	if err := h.catalogCache.Invalidate(r.Context()); err != nil {
		logger.Warn(r.Context()).Err(err).Msg("failed to invalidate catalog cache")
	}
}

func (h *CatalogHandler) updateBooksMetric() {
	if count, err := h.books.Count(); err == nil {
		h.totalBooks.Set(float64(count))
	}
}

// RegisterRoutes registers shop and admin catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router, mw *userhttp.Middleware) {
	cached := h.catalogCache.Middleware

	// Public shop routes; identity is optional and only affects
	// is_favorite annotations
	router.HandleFunc("/shop", h.metricsMiddleware("/shop", mw.Optional(cached(h.ListBooks)))).Methods("GET")
	router.HandleFunc("/shop/{bookId}", h.metricsMiddleware("/shop/{bookId}", mw.Optional(cached(h.GetBook)))).Methods("GET")
	router.HandleFunc("/authors", h.metricsMiddleware("/authors", cached(h.ListAuthors))).Methods("GET")
	router.HandleFunc("/authors/{id}", h.metricsMiddleware("/authors/{id}", cached(h.GetAuthor))).Methods("GET")
	router.HandleFunc("/genres", h.metricsMiddleware("/genres", cached(h.ListGenres))).Methods("GET")

	// Admin CRUD
	router.HandleFunc("/admin/books", h.metricsMiddleware("/admin/books", mw.AdminOnly(h.CreateBook))).Methods("POST")
	router.HandleFunc("/admin/books/{bookId}", h.metricsMiddleware("/admin/books/{bookId}", mw.AdminOnly(h.UpdateBook))).Methods("PUT")
	router.HandleFunc("/admin/books/{bookId}", h.metricsMiddleware("/admin/books/{bookId}", mw.AdminOnly(h.DeleteBook))).Methods("DELETE")
	router.HandleFunc("/admin/authors", h.metricsMiddleware("/admin/authors", mw.AdminOnly(h.CreateAuthor))).Methods("POST")
	router.HandleFunc("/admin/authors/{id}", h.metricsMiddleware("/admin/authors/{id}", mw.AdminOnly(h.UpdateAuthor))).Methods("PUT")
	router.HandleFunc("/admin/authors/{id}", h.metricsMiddleware("/admin/authors/{id}", mw.AdminOnly(h.DeleteAuthor))).Methods("DELETE")
	router.HandleFunc("/admin/genres", h.metricsMiddleware("/admin/genres", mw.AdminOnly(h.CreateGenre))).Methods("POST")
	router.HandleFunc("/admin/genres/{id}", h.metricsMiddleware("/admin/genres/{id}", mw.AdminOnly(h.UpdateGenre))).Methods("PUT")
	router.HandleFunc("/admin/genres/{id}", h.metricsMiddleware("/admin/genres/{id}", mw.AdminOnly(h.DeleteGenre))).Methods("DELETE")
}

func currentUserID(r *http.Request) uint {
	if user, ok := userhttp.UserFromContext(r.Context()); ok {
		return user.ID
	}
	return 0
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

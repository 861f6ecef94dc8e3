package book

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/slpixe/py-book/internal/platform/respond"
	"github.com/slpixe/py-book/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes builds a standalone catalog router. listMiddleware wraps /all only;
// the response cache goes there because /search keys on arbitrary user input.
func (handler *Handler) Routes(listMiddleware ...func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()
	router.With(listMiddleware...).Get("/all", handler.ListBooks)
	router.Get("/search", handler.SearchBooks)
	return router
}

// ListBooks handles GET /all: the full collection, paginated.
func (handler *Handler) ListBooks(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request, handler.service.DefaultLimit())

	books, meta := handler.service.List(params)
	respond.Paginated(writer, books, meta)
}

// SearchBooks handles GET /search: records matching all recognized filters,
// paginated. With no recognized filters it returns the full collection,
// identical to /all.
func (handler *Handler) SearchBooks(writer http.ResponseWriter, request *http.Request) {
	filters := ParseFilters(request.URL.Query())
	params := pagination.FromRequest(request, handler.service.DefaultLimit())

	books, meta := handler.service.Find(filters, params)
	respond.Paginated(writer, books, meta)
}

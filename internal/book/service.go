package book

import (
	"log/slog"

	"github.com/slpixe/py-book/pkg/pagination"
)

// Service coordinates queries against the store: filter, then paginate,
// then hand the page and its metadata to the transport layer.
//
// All operations are pure in-memory reads with no side effects, so they are
// cheap to re-run and safe under request cancellation.
type Service struct {
	store        *Store
	logger       *slog.Logger
	defaultLimit int
}

func NewService(store *Store, logger *slog.Logger, defaultLimit int) *Service {
	if defaultLimit < 1 {
		defaultLimit = pagination.DefaultLimit
	}
	return &Service{
		store:        store,
		logger:       logger,
		defaultLimit: defaultLimit,
	}
}

// DefaultLimit is the per-page record count used when the client sends none.
func (service *Service) DefaultLimit() int {
	return service.defaultLimit
}

// List returns one page of the full collection.
func (service *Service) List(params pagination.Params) ([]Book, pagination.Meta) {
	return pagination.Page(service.store.All(), params)
}

// Find returns one page of the records matching all filters. With an empty
// filter set it is identical to [Service.List].
func (service *Service) Find(filters Filters, params pagination.Params) ([]Book, pagination.Meta) {
	matches := Search(service.store.All(), filters)

	service.logger.Debug("book_search_evaluated",
		slog.Int("filters", len(filters)),
		slog.Int("matches", len(matches)),
	)

	return pagination.Page(matches, params)
}

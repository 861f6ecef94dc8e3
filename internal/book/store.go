package book

// Store holds the loaded record collection for the process lifetime.
//
// # Concurrency
//
// The collection is immutable after construction, so the store is safe for
// unlimited concurrent readers with no locking. There is no mutation API;
// every request observes the identical snapshot.
type Store struct {
	books []Book
}

// NewStore wraps the loaded collection. The caller hands over ownership of
// the slice and must not modify it afterwards.
func NewStore(books []Book) *Store {
	return &Store{books: books}
}

// All returns the full ordered collection. Callers treat it as read-only.
func (s *Store) All() []Book {
	return s.books
}

// Len reports the number of loaded records.
func (s *Store) Len() int {
	return len(s.books)
}

// Package book implements the read-only book catalog: the record model,
// the startup NDJSON loader, the immutable in-memory store, and the
// substring search engine behind the /all and /search endpoints.
package book

// Book represents one book entry extracted from the Wikipedia dump.
//
// All fields are opaque text for matching purposes. Values missing in the
// source are empty strings, so every key is always present on the wire.
// Records are built once during load and never mutated afterwards.
type Book struct {
	Name        string `json:"name"`
	Author      string `json:"author"`
	Language    string `json:"language"`
	Genre       string `json:"genre"`
	Publisher   string `json:"publisher"`
	ReleaseDate string `json:"release_date"`
	MediaType   string `json:"media_type"`
	Pages       string `json:"pages"`
	ISBN        string `json:"isbn"`
}

// Field names one of the nine filterable record fields.
type Field string

const (
	FieldName        Field = "name"
	FieldAuthor      Field = "author"
	FieldLanguage    Field = "language"
	FieldGenre       Field = "genre"
	FieldPublisher   Field = "publisher"
	FieldReleaseDate Field = "release_date"
	FieldMediaType   Field = "media_type"
	FieldPages       Field = "pages"
	FieldISBN        Field = "isbn"
)

// Fields lists every filterable field in wire order.
var Fields = []Field{
	FieldName,
	FieldAuthor,
	FieldLanguage,
	FieldGenre,
	FieldPublisher,
	FieldReleaseDate,
	FieldMediaType,
	FieldPages,
	FieldISBN,
}

// accessors maps each field to its record accessor. The closed table keeps
// the filter set statically checkable instead of reaching for reflection.
var accessors = map[Field]func(*Book) string{
	FieldName:        func(b *Book) string { return b.Name },
	FieldAuthor:      func(b *Book) string { return b.Author },
	FieldLanguage:    func(b *Book) string { return b.Language },
	FieldGenre:       func(b *Book) string { return b.Genre },
	FieldPublisher:   func(b *Book) string { return b.Publisher },
	FieldReleaseDate: func(b *Book) string { return b.ReleaseDate },
	FieldMediaType:   func(b *Book) string { return b.MediaType },
	FieldPages:       func(b *Book) string { return b.Pages },
	FieldISBN:        func(b *Book) string { return b.ISBN },
}

// value returns the record's text for one field.
func (b *Book) value(field Field) string {
	accessor, known := accessors[field]
	if !known {
		return ""
	}
	return accessor(b)
}

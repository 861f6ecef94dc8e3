package book

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Scanner buffer bounds: dump lines carry full Wikipedia metadata and
// routinely exceed the bufio default of 64KB.
const (
	scanInitialBuffer = 64 * 1024
	scanMaxLine       = 16 * 1024 * 1024
)

// Load reads the NDJSON dump at path and returns its records in line order.
//
// # Robustness
//
// Malformed lines are logged and skipped; they never abort the load. A
// missing file yields an empty collection so the service still starts and
// serves empty result sets. Any other open or read failure is returned and
// treated as fatal by the caller.
func Load(path string, logger *slog.Logger) ([]Book, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("book_data_missing", slog.String("path", path))
			return nil, nil
		}
		return nil, fmt.Errorf("book: open data file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, scanInitialBuffer), scanMaxLine)

	var (
		books   []Book
		lineNum int
		skipped int
	)

	for scanner.Scan() {
		lineNum++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		record, err := parseLine([]byte(line))
		if err != nil {
			skipped++
			logger.Warn("book_line_skipped",
				slog.Int("line", lineNum),
				slog.Any("error", err),
			)
			continue
		}

		books = append(books, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("book: read data file: %w", err)
	}

	logger.Info("book_data_loaded",
		slog.String("path", path),
		slog.Int("records", len(books)),
		slog.Int("skipped", skipped),
	)

	return books, nil
}

// parseLine decodes one dump line into a record.
//
// The dump pairs each entry as [title, {record}]; the record is the second
// element. A bare object line is also accepted.
func parseLine(data []byte) (Book, error) {
	doc := data

	if len(data) > 0 && data[0] == '[' {
		var pair []json.RawMessage
		if err := json.Unmarshal(data, &pair); err != nil {
			return Book{}, fmt.Errorf("invalid line array: %w", err)
		}
		if len(pair) < 2 {
			return Book{}, fmt.Errorf("line array has %d elements, want 2", len(pair))
		}
		doc = pair[1]
	}

	var raw bookDoc
	if err := json.Unmarshal(doc, &raw); err != nil {
		return Book{}, fmt.Errorf("invalid record object: %w", err)
	}

	return raw.book(), nil
}

// bookDoc is the tolerant decode form of a record: every field accepts
// strings, numbers, booleans, null, or nested values.
type bookDoc struct {
	Name        text `json:"name"`
	Author      text `json:"author"`
	Language    text `json:"language"`
	Genre       text `json:"genre"`
	Publisher   text `json:"publisher"`
	ReleaseDate text `json:"release_date"`
	MediaType   text `json:"media_type"`
	Pages       text `json:"pages"`
	ISBN        text `json:"isbn"`
}

func (d bookDoc) book() Book {
	return Book{
		Name:        string(d.Name),
		Author:      string(d.Author),
		Language:    string(d.Language),
		Genre:       string(d.Genre),
		Publisher:   string(d.Publisher),
		ReleaseDate: string(d.ReleaseDate),
		MediaType:   string(d.MediaType),
		Pages:       string(d.Pages),
		ISBN:        string(d.ISBN),
	}
}

// text decodes any JSON value to its text form: strings verbatim, numbers
// and booleans as their literals, null as "", and nested arrays/objects as
// their compact JSON. Page counts stored as numbers therefore become digit
// strings and stay substring-matchable like every other field.
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*t = ""
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = text(s)
		return nil
	}

	// Numbers, booleans, arrays, objects: keep the literal text.
	*t = text(trimmed)
	return nil
}

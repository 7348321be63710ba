package ticket

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/izanamador/mercadata/internal/category"
	"github.com/izanamador/mercadata/internal/extraction"
	"github.com/izanamador/mercadata/internal/parsing"
)

// SyncStatus describes how a merge against the durable store ended. A
// non-ok status is recoverable: the parsed local rows are always preserved
// in the result.
type SyncStatus string

const (
	// SyncOK means the merge and report both succeeded.
	SyncOK SyncStatus = "ok"
	// SyncNoText means the document had no extractable text; nothing was
	// parsed and the store was not touched.
	SyncNoText SyncStatus = "no_text"
	// SyncStoreEmpty means there was no historical data and no new rows.
	SyncStoreEmpty SyncStatus = "store_empty"
	// SyncStoreUnavailable means the store could not be read or written;
	// locally parsed rows are kept in the result.
	SyncStoreUnavailable SyncStatus = "store_unavailable"
	// SyncSchemaMismatch means historical rows are missing a required
	// column; aggregates are empty and the column is reported.
	SyncSchemaMismatch SyncStatus = "schema_mismatch"
)

// SyncResult is the outcome of processing a document or merging a batch.
// Callers must inspect Status: a degraded status is a warning, never a
// pipeline failure.
type SyncResult struct {
	Status        SyncStatus `json:"status"`
	Warning       string     `json:"warning,omitempty"`
	MissingColumn string     `json:"missing_column,omitempty"`
	NewRows       int        `json:"new_rows"`
	Parsed        []Item     `json:"parsed"`
	Report        *Report    `json:"report,omitempty"`
}

// IDGenerator generates unique IDs for stored documents
type IDGenerator interface {
	Generate() string
}

// defaultIDGenerator generates IDs using UnixNano timestamp
type defaultIDGenerator struct{}

func (g *defaultIDGenerator) Generate() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

// Service runs the receipt pipeline: text extraction, header and item
// extraction, classification, and the merge-and-aggregate step against the
// durable store.
type Service struct {
	db          DB
	extractor   extraction.Extractor
	storage     Storage
	taxonomy    category.Taxonomy
	idGenerator IDGenerator

	// mu serializes read-merge-replace against the store; the per-document
	// parsing stages are pure and need no coordination.
	mu sync.Mutex
}

// NewService creates a new Service with the default taxonomy and ID generator
func NewService(db DB, extractor extraction.Extractor, storage Storage) *Service {
	return NewServiceWithDeps(db, extractor, storage, category.Default(), &defaultIDGenerator{})
}

// NewServiceWithDeps creates a new Service with custom dependencies for testing
func NewServiceWithDeps(db DB, extractor extraction.Extractor, storage Storage, taxonomy category.Taxonomy, idGen IDGenerator) *Service {
	return &Service{
		db:          db,
		extractor:   extractor,
		storage:     storage,
		taxonomy:    taxonomy,
		idGenerator: idGen,
	}
}

// sanitizeFilename cleans up a filename by removing special characters and truncating length
func sanitizeFilename(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	reg := regexp.MustCompile(`[^a-zA-Z0-9\s\-_]`)
	base = reg.ReplaceAllString(base, "")

	reg = regexp.MustCompile(`\s+`)
	base = reg.ReplaceAllString(base, " ")

	base = strings.TrimSpace(base)

	maxLen := 50
	if len(base) > maxLen {
		base = base[:maxLen]
	}

	if base == "" {
		base = "ticket"
	}

	return base + ext
}

// ProcessDocument retains the uploaded document, runs the parsing pipeline
// on its text, and merges the classified rows into the store. A document
// with no extractable text is skipped with a warning, not an error.
func (s *Service) ProcessDocument(filename string, data []byte) (*SyncResult, error) {
	id := s.idGenerator.Generate()
	cleanFilename := sanitizeFilename(filename)

	savedPath, err := s.storage.Save(fmt.Sprintf("%s_%s", id, cleanFilename), data)
	if err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}

	text, err := s.extractor.ExtractText(data)
	if err != nil || strings.TrimSpace(text) == "" {
		slog.Warn("No text extracted from document",
			"filename", filename,
			"file_size", len(data),
			"error", err,
		)
		s.storage.Delete(savedPath)
		return &SyncResult{
			Status:  SyncNoText,
			Warning: fmt.Sprintf("no text extracted from %s", filename),
			Parsed:  []Item{},
		}, nil
	}

	items := s.ParseText(text)
	slog.Info("Parsed document", "filename", filename, "items", len(items))

	return s.Sync(items), nil
}

// ParseText runs header extraction, item extraction, and classification over
// one receipt's text. Pure with respect to the store.
func (s *Service) ParseText(text string) []Item {
	header := parsing.ExtractHeader(text)

	candidates := parsing.ExtractItems(text)
	items := make([]Item, 0, len(candidates))
	for _, candidate := range candidates {
		price, err := parsing.ParsePrice(candidate.Price)
		if err != nil {
			slog.Warn("Skipping item with bad price",
				"description", candidate.Description,
				"price", candidate.Price,
				"error", err,
			)
			continue
		}
		items = append(items, Item{
			Timestamp:   header.Timestamp,
			TicketID:    header.TicketID,
			Location:    header.Location,
			Description: candidate.Description,
			Category:    s.taxonomy.Classify(candidate.Description),
			Price:       price,
		})
	}
	return items
}

// Sync merges a parsed batch into the store and recomputes the report. The
// read-merge-replace step is the pipeline's only critical section and runs
// under the service mutex; store failures are reported in the result with
// the local rows intact.
func (s *Service) Sync(batch []Item) *SyncResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if batch == nil {
		batch = []Item{}
	}
	result := &SyncResult{Status: SyncOK, Parsed: batch}

	var existing []Item
	err := withRetry("read store", func() error {
		var readErr error
		existing, readErr = s.db.ReadAll()
		return readErr
	})
	if err != nil {
		var missing *MissingColumnError
		if errors.As(err, &missing) {
			slog.Warn("Stored rows do not match the expected schema", "column", missing.Column)
			result.Status = SyncSchemaMismatch
			result.MissingColumn = missing.Column
			result.Warning = err.Error()
			result.Report = EmptyReport()
			return result
		}
		slog.Error("Store unreachable, keeping local rows", "error", err)
		result.Status = SyncStoreUnavailable
		result.Warning = fmt.Sprintf("store unreachable: %v", err)
		return result
	}

	merged, added := Merge(existing, batch)
	result.NewRows = added

	if added > 0 {
		if err := withRetry("write store", func() error { return s.db.ReplaceAll(merged) }); err != nil {
			slog.Error("Store write failed, keeping local rows", "error", err)
			result.Status = SyncStoreUnavailable
			result.Warning = fmt.Sprintf("store unreachable: %v", err)
			return result
		}
	}

	if len(merged) == 0 {
		result.Status = SyncStoreEmpty
		result.Warning = "no historical data and no new rows"
	}
	result.Report = BuildReport(merged)
	return result
}

// Report recomputes the aggregate report from the full stored record set.
func (s *Service) Report() *SyncResult {
	return s.Sync(nil)
}

// ListItems returns all persisted items
func (s *Service) ListItems() ([]Item, error) {
	items, err := s.db.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	return items, nil
}

// ExportCSV writes the full persisted record set in the contract schema.
func (s *Service) ExportCSV(w io.Writer) error {
	items, err := s.db.ReadAll()
	if err != nil {
		return fmt.Errorf("reading items for export: %w", err)
	}
	return WriteCSV(w, items)
}

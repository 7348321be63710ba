// Package extraction turns uploaded receipt documents into plain text.
package extraction

// Extractor defines the interface for document text extraction
type Extractor interface {
	// ExtractText returns the plain text of the document's first page. An
	// empty string means the document had no extractable text.
	ExtractText(data []byte) (string, error)
	// Close releases extractor resources
	Close() error
}

package extraction

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// PDF extracts text from PDF documents using MuPDF.
type PDF struct{}

// NewPDF creates a new PDF extractor
func NewPDF() *PDF {
	return &PDF{}
}

// ExtractText renders the first page of the PDF as plain text. Receipts are
// single page, so later pages are ignored.
func (p *PDF) ExtractText(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return "", nil
	}

	text, err := doc.Text(0)
	if err != nil {
		return "", fmt.Errorf("extracting PDF text: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// Close closes the extractor
func (p *PDF) Close() error {
	return nil
}

package extract

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupported = errors.New("unsupported file type")
	ErrNoText      = errors.New("no extractable text")
)

// Extractor turns an uploaded document into plain text.
type Extractor interface {
	Extract(data []byte) (string, error)
}

// ForFilename picks an extractor by file extension.
func ForFilename(name string) (Extractor, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return PDFExtractor{}, nil
	case ".docx":
		return DocxExtractor{}, nil
	case ".txt":
		return TextExtractor{}, nil
	default:
		return nil, ErrUnsupported
	}
}

// TextExtractor passes plain text files through unchanged.
type TextExtractor struct{}

func (TextExtractor) Extract(data []byte) (string, error) {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

// Package parser converts raw document bytes into the page sequence the
// quality pipeline consumes: per page, text lines, heading candidates, and
// candidate code spans.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/document"
)

// Parser converts raw document bytes into a 1-indexed page sequence.
type Parser interface {
	Parse(r io.Reader, filename string) ([]document.Page, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

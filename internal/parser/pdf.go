package parser

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/document"
)

// PDFParser handles PDF files. It tries the Go library first,
// then falls back to pdftotext if available.
type PDFParser struct {
	FallbackPdftotext bool
}

func (p *PDFParser) Parse(r io.Reader, filename string) ([]document.Page, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "docquality-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	rawPages, err := extractPDFPages(tmpPath)
	if err != nil && p.FallbackPdftotext {
		rawPages, err = extractPdftotext(tmpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	pages := make([]document.Page, 0, len(rawPages))
	for _, text := range rawPages {
		n := len(pages) + 1
		lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
		pages = append(pages, document.Page{
			Number:    n,
			Lines:     lines,
			CodeSpans: indentedCodeSpans(lines),
			Headings:  headingCandidates(lines, n),
		})
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("pdf contains no extractable text")
	}
	return pages, nil
}

func extractPDFPages(path string) ([]string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pages []string
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}

func extractPdftotext(path string) ([]string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}
	// pdftotext separates pages with form feeds.
	return strings.Split(string(out), "\f"), nil
}

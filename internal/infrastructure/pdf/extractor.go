package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"billing-agent/internal/application/port/output"

	"github.com/ledongthuc/pdf"
)

var _ output.PDFTextExtractor = (*Extractor)(nil)

// Page is one page of a parsed document.
type Page interface {
	PlainText() (string, error)
}

type Extractor struct {
	open   func(data []byte) ([]Page, error)
	logger output.LoggerPort
}

func NewExtractor(logger output.LoggerPort) *Extractor {
	return &Extractor{
		open:   openPages,
		logger: logger,
	}
}

// ExtractText returns the plain text of every page joined with newlines.
// Layout is not preserved. The first parse or page error aborts extraction.
func (e *Extractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	pages, err := e.open(data)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	texts := make([]string, 0, len(pages))
	for i, page := range pages {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := page.PlainText()
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", i+1, err)
		}
		texts = append(texts, text)
	}

	e.logger.Debug("PDF text extracted", "pages", len(pages), "bytes", len(data))
	return strings.Join(texts, "\n"), nil
}

type ledongthucPage struct {
	page pdf.Page
}

func (p ledongthucPage) PlainText() (text string, err error) {
	if p.page.V.IsNull() {
		return "", nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed page: %v", r)
		}
	}()
	return p.page.GetPlainText(nil)
}

func openPages(data []byte) (pages []Page, err error) {
	// The parser panics on some malformed inputs instead of returning errors.
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	n := reader.NumPage()
	pages = make([]Page, 0, n)
	for i := 1; i <= n; i++ {
		pages = append(pages, ledongthucPage{page: reader.Page(i)})
	}
	return pages, nil
}

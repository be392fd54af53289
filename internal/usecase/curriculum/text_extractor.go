package curriculum

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractionError indicates the source document could not be read or parsed.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

type TextExtractor struct{}

func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Extract reads a PDF page by page. Pages whose text is empty or
// whitespace-only are skipped; the remaining page texts are joined by a
// blank line in page order.
func (te *TextExtractor) Extract(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Err: err}
	}
	defer f.Close()

	var pages []string
	numPages := reader.NumPage()

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Path: path, Err: err}
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		pages = append(pages, text)
	}

	return strings.Join(pages, "\n\n"), nil
}

// =============================================================================
// PDF Bill Extraction - PDF Text Reader
// =============================================================================
//
// This module turns a PDF file into per-page text suitable for the pattern
// extractors: within a text row, words are joined with single spaces; rows
// are joined with newlines. That reproduces the shape the extraction
// patterns were written against (labels and values on one line, one table
// row per line), and the whitespace normalizer repairs the rest.
//
// Errors here are fatal by contract: a file that cannot be opened or decoded
// aborts the whole run. Only per-page *extraction* failures are recoverable,
// and those are handled by the caller.
//
// =============================================================================

package pdfreader

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractPages opens the PDF at path and returns the extracted text of every
// page, in page order. Pages with no content dictionary yield an empty
// string so page numbering stays aligned with the document.
func ExtractPages(path string) ([]string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer file.Close()

	pages := make([]string, 0, reader.NumPage())
	for number := 1; number <= reader.NumPage(); number++ {
		text, err := extractPage(reader.Page(number))
		if err != nil {
			return nil, fmt.Errorf("failed to extract page %d of %s: %w", number, path, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// extractPage renders one page as text, row by row.
func extractPage(page pdf.Page) (string, error) {
	if page.V.IsNull() {
		return "", nil
	}

	rows, err := page.GetTextByRow()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, row := range rows {
		for i, word := range row.Content {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(word.S)
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

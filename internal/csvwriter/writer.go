// =============================================================================
// PDF Bill Extraction - CSV Writer Module
// =============================================================================
//
// This module writes the output tables as CSV. The files are consumed by
// spreadsheet tools, so by default they start with a UTF-8 byte-order mark:
// without it, Excel guesses a legacy codepage and renders the Chinese
// headers as mojibake.
//
// The writer takes [][]string rather than records so the flat table and the
// pivot table (whose header is two rows deep) go through the same path.
//
// =============================================================================

package csvwriter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
)

// utf8BOM is the byte-order mark prepended for spreadsheet compatibility.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// =============================================================================
// WRITE OPTIONS
// =============================================================================

// Options contains options for CSV generation.
type Options struct {
	// IncludeBOM determines whether the file starts with a UTF-8 BOM.
	// Default: true
	IncludeBOM bool

	// UseCRLF determines whether records end with \r\n instead of \n.
	// Default: false
	UseCRLF bool
}

// DefaultOptions returns the default write options.
func DefaultOptions() Options {
	return Options{
		IncludeBOM: true,
		UseCRLF:    false,
	}
}

// =============================================================================
// WRITE FUNCTIONS
// =============================================================================

// Write renders the table and writes it to path with the default options.
func Write(path string, table [][]string) error {
	return WriteWithOptions(path, table, DefaultOptions())
}

// WriteWithOptions renders the table and writes it to path.
// The file is assembled in memory first so a mid-write error cannot leave a
// truncated table behind.
func WriteWithOptions(path string, table [][]string, options Options) error {
	data, err := Render(table, options)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Render produces the CSV bytes for a table.
func Render(table [][]string, options Options) ([]byte, error) {
	var buffer bytes.Buffer
	if options.IncludeBOM {
		buffer.Write(utf8BOM)
	}

	writer := csv.NewWriter(&buffer)
	writer.UseCRLF = options.UseCRLF
	if err := writer.WriteAll(table); err != nil {
		return nil, fmt.Errorf("failed to encode CSV: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to encode CSV: %w", err)
	}

	return buffer.Bytes(), nil
}

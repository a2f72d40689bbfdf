// =============================================================================
// PDF Bill Extraction - File Manager Utilities
// =============================================================================
//
// Shared file-level helpers used by the CLI commands:
//   - recursive discovery of PDF files under the input directory
//   - the default input directory (the executable's own location)
//   - the per-run error log written when pages fail extraction
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverPDFFiles walks root recursively and returns every file with a
// .pdf extension (case-insensitive), in walk order. Walk order is
// deterministic (lexical per directory), which keeps run output stable.
func DiscoverPDFFiles(root string) ([]string, error) {
	var files []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	return files, nil
}

// DefaultDirectory returns the directory the running executable lives in.
// This is the input directory when none is given on the command line, so the
// tool can be dropped next to a folder of bills and double-run.
func DefaultDirectory() (string, error) {
	executable, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Dir(executable), nil
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// =============================================================================
// ERROR LOG
// =============================================================================

// ErrorLogEntry records one page that failed extraction.
type ErrorLogEntry struct {
	// FilePath is the source PDF.
	FilePath string

	// Page is the 1-based page number within the PDF.
	Page int

	// Message is the extraction error.
	Message string
}

// WriteErrorLog writes the failure entries to a uniquely named log file in
// dir and returns its path. The name carries a timestamp for humans and a
// UUID so that two runs in the same second cannot collide.
func WriteErrorLog(entries []ErrorLogEntry, dir string) (string, error) {
	name := fmt.Sprintf("extraction_errors_%s_%s.log",
		time.Now().Format("20060102_150405"), uuid.New().String())
	path := filepath.Join(dir, name)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extraction errors: %d\n", len(entries)))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format(time.RFC3339)))
	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("%s (page %d): %s\n", entry.FilePath, entry.Page, entry.Message))
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write error log: %w", err)
	}
	return path, nil
}

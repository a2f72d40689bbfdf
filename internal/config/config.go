// =============================================================================
// PDF Bill Extraction - Configuration Module
// =============================================================================
//
// This module loads the optional application configuration. The tool is
// designed to run with no configuration at all - point it at a directory and
// it writes 账单.csv and 账单透视表.csv next to the PDFs - so every setting
// has a default and a missing config file is not an error.
//
// The config file exists for the deployment details that differ between the
// two historical script variants and between sites: output file names, the
// pivot value field, and the optional workbook export.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// OUTPUT FILE SETTINGS
	// =========================================================================

	// BillsFileName is the name of the flat output table, written into the
	// input directory.
	// Default: "账单.csv"
	BillsFileName string `yaml:"bills_file_name"`

	// PivotFileName is the name of the pivot output table.
	// Default: "账单透视表.csv"
	PivotFileName string `yaml:"pivot_file_name"`

	// PivotFileFromValue names the pivot file after the pivot value field
	// instead of PivotFileName (e.g. "有功总合计电量.csv"). This mirrors the
	// older deployment's convention.
	// Default: false
	PivotFileFromValue bool `yaml:"pivot_file_from_value"`

	// PivotValueField is the record field placed in the pivot table cells.
	// Default: "有功总合计电量"
	PivotValueField string `yaml:"pivot_value_field"`

	// =========================================================================
	// WORKBOOK EXPORT SETTINGS
	// =========================================================================

	// WriteWorkbook enables the additional XLSX workbook export carrying
	// both tables as sheets.
	// Default: false
	WriteWorkbook bool `yaml:"write_workbook"`

	// WorkbookFileName is the name of the exported workbook.
	// Default: "账单.xlsx"
	WorkbookFileName string `yaml:"workbook_file_name"`

	// =========================================================================
	// REPORTING SETTINGS
	// =========================================================================

	// ErrorLog enables writing a log file listing every page that failed
	// extraction. Failures are always printed to the console; the log file
	// is for runs over large directory trees.
	// Default: true
	ErrorLog bool `yaml:"error_log"`
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BillsFileName:    "账单.csv",
		PivotFileName:    "账单透视表.csv",
		PivotValueField:  "有功总合计电量",
		WorkbookFileName: "账单.xlsx",
		ErrorLog:         true,
	}
}

// LoadRequired reads the configuration from a YAML file that must exist.
// Unlike Load it treats a missing file as an error; use it when the path was
// given explicitly rather than defaulted, so a typo cannot silently run with
// the built-in configuration.
func LoadRequired(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	return Load(path)
}

// Load reads the configuration from a YAML file. A missing file yields the
// defaults; an unreadable or malformed file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Decode into a shadow struct whose booleans are pointers, so an
	// omitted key is distinguishable from an explicit false and keeps its
	// default.
	var raw struct {
		BillsFileName      string `yaml:"bills_file_name"`
		PivotFileName      string `yaml:"pivot_file_name"`
		PivotFileFromValue bool   `yaml:"pivot_file_from_value"`
		PivotValueField    string `yaml:"pivot_value_field"`
		WriteWorkbook      bool   `yaml:"write_workbook"`
		WorkbookFileName   string `yaml:"workbook_file_name"`
		ErrorLog           *bool  `yaml:"error_log"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config := Default()
	config.BillsFileName = raw.BillsFileName
	config.PivotFileName = raw.PivotFileName
	config.PivotFileFromValue = raw.PivotFileFromValue
	config.PivotValueField = raw.PivotValueField
	config.WriteWorkbook = raw.WriteWorkbook
	config.WorkbookFileName = raw.WorkbookFileName
	if raw.ErrorLog != nil {
		config.ErrorLog = *raw.ErrorLog
	}

	applyDefaults(config)
	if err := validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// applyDefaults fills any setting the file blanked out.
func applyDefaults(config *Config) {
	defaults := Default()
	if config.BillsFileName == "" {
		config.BillsFileName = defaults.BillsFileName
	}
	if config.PivotFileName == "" {
		config.PivotFileName = defaults.PivotFileName
	}
	if config.PivotValueField == "" {
		config.PivotValueField = defaults.PivotValueField
	}
	if config.WorkbookFileName == "" {
		config.WorkbookFileName = defaults.WorkbookFileName
	}
}

// ResolvedPivotFileName returns the pivot file name after applying the
// PivotFileFromValue convention.
func (c *Config) ResolvedPivotFileName() string {
	if c.PivotFileFromValue {
		return c.PivotValueField + ".csv"
	}
	return c.PivotFileName
}

// validate rejects configurations that would make the writers clobber each
// other or write outside the input directory.
func validate(config *Config) error {
	names := map[string]string{
		"bills_file_name":    config.BillsFileName,
		"pivot_file_name":    config.ResolvedPivotFileName(),
		"workbook_file_name": config.WorkbookFileName,
	}
	seen := make(map[string]string)
	for key, name := range names {
		if containsPathSeparator(name) {
			return fmt.Errorf("%s must be a bare file name, got %q", key, name)
		}
		if previous, ok := seen[name]; ok {
			return fmt.Errorf("%s and %s are both %q", previous, key, name)
		}
		seen[name] = key
	}
	return nil
}

// containsPathSeparator reports whether name tries to escape the input
// directory.
func containsPathSeparator(name string) bool {
	for _, r := range name {
		if r == '/' || r == '\\' {
			return true
		}
	}
	return false
}

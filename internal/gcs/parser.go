package gcs

import (
	"encoding/xml"
	"fmt"
	"os"
)

// ParseSheet parses a GCS XML export.
//
// Precondition: data must be well-formed XML with a <character> root.
// Postcondition: returns a non-nil Sheet or a non-nil error.
func ParseSheet(data []byte) (*Sheet, error) {
	var s Sheet
	if err := xml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing GCS sheet: %w", err)
	}
	return &s, nil
}

// LoadSheet reads and parses a GCS XML export from disk. A read failure is
// fatal to the operation.
func LoadSheet(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading GCS sheet %s: %w", path, err)
	}
	return ParseSheet(data)
}

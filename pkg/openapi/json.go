package openapi

import (
	"encoding/json"
	"fmt"
	"os"
)

// MarshalJSON serializes the spec to indented JSON bytes.
func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}

// WriteJSON writes the indented JSON document to filename.
func WriteJSON(spec *Spec, filename string) error {
	data, err := MarshalJSON(spec)
	if err != nil {
		return fmt.Errorf("marshal openapi: %w", err)
	}
	return os.WriteFile(filename, data, 0o644)
}

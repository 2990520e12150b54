package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
	m "pluginscout.dev/pkg/pluginscout/internal/model"
)

// Output formats accepted by EncodeEntries.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// ErrUnknownFormat is returned for an output format EncodeEntries does not
// support.
var ErrUnknownFormat = errors.New("unknown output format")

// EncodeEntries writes entries to w in format.
func EncodeEntries(w io.Writer, format string, entries []m.CacheEntry) error {
	if entries == nil {
		entries = []m.CacheEntry{}
	}

	switch format {
	case FormatTable, "":
		_, err := io.WriteString(w, renderEntriesTable(entries))
		return err
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(entries); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return encoder.Close()
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(entries); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

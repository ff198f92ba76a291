// Package cli provides structured output helpers.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
)

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

// IsJSONLOutput reports whether --jsonl was given.
func IsJSONLOutput() bool {
	return jsonlOutput
}

// WriteOutput writes v as indented JSON, or as one JSON value per line for
// --jsonl. Slices are split into one line per element in JSONL mode.
func WriteOutput(out io.Writer, v any) error {
	if IsJSONLOutput() {
		return writeJSONL(out, v)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeJSONL(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	value := reflect.ValueOf(v)
	if value.Kind() != reflect.Slice {
		return enc.Encode(v)
	}
	for i := 0; i < value.Len(); i++ {
		if err := enc.Encode(value.Index(i).Interface()); err != nil {
			return err
		}
	}
	return nil
}

// PreflightError is returned when a command cannot start in the current
// environment.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	msg := e.Message
	if e.Hint != "" {
		msg += "\nHint: " + e.Hint
	}
	if e.NextStep != "" {
		msg += fmt.Sprintf("\nNext: %s", e.NextStep)
	}
	return msg
}

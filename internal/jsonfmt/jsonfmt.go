// Package jsonfmt pretty-prints and minifies JSON without reordering keys.
package jsonfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Format re-indents src with the given indent width (spaces). Key order
// is preserved. Invalid JSON errors with the offending offset.
func Format(src string, indent int) (string, error) {
	if indent <= 0 {
		indent = 2
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(src), "", strings.Repeat(" ", indent)); err != nil {
		return "", describeErr(err)
	}
	return buf.String(), nil
}

// Minify strips all insignificant whitespace from src.
func Minify(src string) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(src)); err != nil {
		return "", describeErr(err)
	}
	return buf.String(), nil
}

func describeErr(err error) error {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return fmt.Errorf("invalid json at offset %d: %w", syn.Offset, err)
	}
	return fmt.Errorf("invalid json: %w", err)
}

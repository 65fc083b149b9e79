package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/claude/wgerfetch/internal/models"
)

// JSONFile writes the catalog as a single indented JSON array.
type JSONFile struct {
	Path string
}

// Compile-time check: JSONFile satisfies Sink.
var _ Sink = (*JSONFile)(nil)

func (f *JSONFile) Name() string { return "json:" + f.Path }

// Write overwrites Path with the encoded catalog.
func (f *JSONFile) Write(_ context.Context, _ string, exercises []models.Exercise) error {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, exercises); err != nil {
		return err
	}
	if err := os.WriteFile(f.Path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", f.Path, err)
	}
	return nil
}

// EncodeJSON writes exercises as a JSON array with two-space indentation.
// Non-ASCII text and HTML characters are written verbatim, and no newline
// follows the closing bracket.
func EncodeJSON(w io.Writer, exercises []models.Exercise) error {
	if exercises == nil {
		exercises = []models.Exercise{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(exercises); err != nil {
		return fmt.Errorf("encoding exercises: %w", err)
	}
	_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return err
}

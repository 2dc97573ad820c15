package output

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
)

// JSONWriter writes pretty-printed JSON with Korean text unescaped.
type JSONWriter struct {
	w     *bufio.Writer
	items []any
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w: bufio.NewWriter(w),
	}
}

// Write buffers a single item.
func (w *JSONWriter) Write(data any) error {
	w.items = append(w.items, data)
	return nil
}

// Flush writes the buffered items. A single item is emitted directly,
// multiple items as an array.
func (w *JSONWriter) Flush() error {
	var payload any
	switch len(w.items) {
	case 0:
		return w.w.Flush()
	case 1:
		payload = w.items[0]
	default:
		payload = w.items
	}

	data, err := marshalNoEscape(payload, true)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(data); err != nil {
		return err
	}
	return w.w.Flush()
}

// JSONLWriter writes newline-delimited JSON.
type JSONLWriter struct {
	w *bufio.Writer
}

// NewJSONLWriter creates a JSONL writer.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{
		w: bufio.NewWriter(w),
	}
}

// Write writes a single item as a JSON line.
func (w *JSONLWriter) Write(data any) error {
	out, err := marshalNoEscape(data, false)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(out); err != nil {
		return err
	}
	return w.w.Flush()
}

// Flush flushes the underlying writer.
func (w *JSONLWriter) Flush() error {
	return w.w.Flush()
}

// marshalNoEscape marshals v without HTML escaping, ending with a newline.
func marshalNoEscape(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

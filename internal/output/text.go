package output

import (
	"bufio"
	"fmt"
	"io"
)

// TextWriter writes plain text, one item per line. Values implementing
// Texter render through it; everything else goes through fmt.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter creates a text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{
		w: bufio.NewWriter(w),
	}
}

// Write writes a single item followed by a newline.
func (w *TextWriter) Write(data any) error {
	var err error
	switch v := data.(type) {
	case Texter:
		_, err = w.w.WriteString(v.Text())
	case string:
		_, err = w.w.WriteString(v)
	default:
		_, err = fmt.Fprintf(w.w, "%v", data)
	}
	if err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	return nil
}

// Flush flushes the underlying writer.
func (w *TextWriter) Flush() error {
	return w.w.Flush()
}

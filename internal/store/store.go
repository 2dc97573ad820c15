// Package store persists guidelines as a JSON file.
//
// The on-disk shape is a mapping of guideline name to description and rule
// list, UTF-8 with Korean text unescaped, two-space indented:
//
//	{
//	  "기본": {
//	    "description": "기본 텍스트 정리 규칙",
//	    "rules": ["Remove empty lines", ...]
//	  }
//	}
//
// Load preserves the file's key order so the registry lists guidelines the
// way the user last saved them.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hyunjae-lee/chatclean/internal/logger"
	"github.com/hyunjae-lee/chatclean/pkg/guideline"
)

const (
	backupDirName  = "guidelines_backup"
	backupFileName = "guidelines_backup.json"
)

// Store reads and writes a guidelines JSON file.
type Store struct {
	path string
}

// New creates a store backed by the file at path. The file does not need
// to exist yet; a missing file loads as empty.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// entry is the persisted shape of a single guideline, keyed by name.
type entry struct {
	Description string   `json:"description"`
	Rules       []string `json:"rules"`
}

// Load reads all guidelines in file order. A missing file is not an error:
// it returns an empty slice, which makes the registry seed its default.
func (s *Store) Load() ([]guideline.Guideline, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("guidelines file not found, starting empty", "path", s.path)
			return nil, nil
		}
		return nil, fmt.Errorf("opening guidelines file: %w", err)
	}
	defer f.Close()

	guidelines, err := decodeOrdered(f)
	if err != nil {
		return nil, fmt.Errorf("parsing guidelines file %s: %w", s.path, err)
	}
	logger.Debug("guidelines loaded", "path", s.path, "count", len(guidelines))
	return guidelines, nil
}

// decodeOrdered walks the top-level JSON object token by token so that the
// resulting slice keeps the file's key order, which encoding/json's map
// decoding would discard.
func decodeOrdered(r io.Reader) ([]guideline.Guideline, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected top-level object, got %v", tok)
	}

	var guidelines []guideline.Guideline
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %v", keyTok)
		}
		var e entry
		if err := dec.Decode(&e); err != nil {
			return nil, fmt.Errorf("guideline %q: %w", name, err)
		}
		guidelines = append(guidelines, guideline.Guideline{
			Name:        name,
			Description: e.Description,
			Rules:       e.Rules,
		})
	}
	return guidelines, nil
}

// Save writes all guidelines atomically, preserving the given order.
func (s *Store) Save(guidelines []guideline.Guideline) error {
	data, err := encodeOrdered(guidelines)
	if err != nil {
		return fmt.Errorf("encoding guidelines: %w", err)
	}
	if err := writeAtomic(s.path, data); err != nil {
		return fmt.Errorf("writing guidelines file: %w", err)
	}
	logger.Debug("guidelines saved", "path", s.path, "count", len(guidelines))
	return nil
}

// encodeOrdered renders the mapping with keys in slice order. encoding/json
// sorts map keys, so the object is assembled by hand from per-entry
// encoders with HTML escaping off (Korean text stays readable).
func encodeOrdered(guidelines []guideline.Guideline) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, g := range guidelines {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")
		if err := encodeNoEscape(&buf, g.Name, ""); err != nil {
			return nil, err
		}
		buf.WriteString(": ")
		if err := encodeNoEscape(&buf, entry{Description: g.Description, Rules: g.Rules}, "  "); err != nil {
			return nil, err
		}
	}
	if len(guidelines) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// encodeNoEscape writes v as JSON without HTML escaping and without the
// trailing newline json.Encoder appends.
func encodeNoEscape(buf *bytes.Buffer, v any, prefix string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

// writeAtomic writes data to path via a temp file and rename so a crash
// mid-write never truncates the live file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

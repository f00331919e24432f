package codesnap

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is one file in a snapshot.
type Entry struct {
	// Path is relative to the scan root and always uses forward slashes.
	Path string

	// Content is the decoded file text, or ReadErrorPrefix followed by the
	// error description when the file could not be read.
	Content string
}

// IsReadError reports whether the entry records a failed read.
func (e Entry) IsReadError() bool {
	return len(e.Content) >= len(ReadErrorPrefix) && e.Content[:len(ReadErrorPrefix)] == ReadErrorPrefix
}

// Snapshot maps relative file paths to file contents.
// Entries keep the order in which they were added, so a snapshot built from
// the same tree always serializes to the same bytes.
// Snapshot is not safe for concurrent use.
type Snapshot struct {
	entries []Entry
	index   map[string]int
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{index: make(map[string]int)}
}

// Add records content for path. Adding an existing path replaces its
// content in place.
func (s *Snapshot) Add(path, content string) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[path]; ok {
		s.entries[i].Content = content
		return
	}
	s.index[path] = len(s.entries)
	s.entries = append(s.entries, Entry{Path: path, Content: content})
}

// AddReadError records a failed read for path.
func (s *Snapshot) AddReadError(path string, err error) {
	s.Add(path, ReadErrorPrefix+err.Error())
}

// Get returns the content stored for path.
func (s *Snapshot) Get(path string) (string, bool) {
	i, ok := s.index[path]
	if !ok {
		return "", false
	}
	return s.entries[i].Content, true
}

// Len returns the number of entries.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries in insertion order.
func (s *Snapshot) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Paths returns the entry paths in insertion order.
func (s *Snapshot) Paths() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Path
	}
	return out
}

// Map returns the snapshot as a plain map.
func (s *Snapshot) Map() map[string]string {
	out := make(map[string]string, len(s.entries))
	for _, e := range s.entries {
		out[e.Path] = e.Content
	}
	return out
}

// MarshalJSON encodes the snapshot as a JSON object in insertion order.
// HTML-significant characters are left unescaped so source text stays readable.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, e.Path); err != nil {
			return nil, fmt.Errorf("failed to encode path %q: %w", e.Path, err)
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, e.Content); err != nil {
			return nil, fmt.Errorf("failed to encode content of %q: %w", e.Path, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of string values, keeping document order.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("snapshot must be a JSON object, got %v", tok)
	}

	decoded := NewSnapshot()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("value for %q: %w", key, err)
		}
		decoded.Add(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = *decoded
	return nil
}

func writeJSONString(buf *bytes.Buffer, v string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates each value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

package payload

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/npillmayer/cefrlex"
)

type layout uint8

const (
	layoutLines  layout = iota // JSON Lines
	layoutArray                // [ {...}, {...} ]
	layoutObject               // { "form": {...} | [...] }
)

// EntryReader streams cefrlex.RawEntry records from JSON input.
type EntryReader struct {
	br      *bufio.Reader
	dec     *json.Decoder
	layout  layout
	started bool
	done    bool
	pending []cefrlex.RawEntry
	skipped int
}

// NewEntryReader creates a reader for a full dictionary payload.
func NewEntryReader(reader io.Reader) *EntryReader {
	br := bufio.NewReader(reader)
	return &EntryReader{br: br, dec: json.NewDecoder(br)}
}

// Skipped is the number of elements dropped because they were not entry
// objects.
func (r *EntryReader) Skipped() int { return r.skipped }

// Next returns the next entry. It returns io.EOF when exhausted.
func (r *EntryReader) Next() (cefrlex.RawEntry, error) {
	if err := r.start(); err != nil {
		return cefrlex.RawEntry{}, err
	}
	for {
		if len(r.pending) > 0 {
			e := r.pending[0]
			r.pending = r.pending[1:]
			return e, nil
		}
		if r.done {
			return cefrlex.RawEntry{}, io.EOF
		}
		if err := r.fill(); err != nil {
			return cefrlex.RawEntry{}, err
		}
	}
}

func (r *EntryReader) start() error {
	if r.started {
		return nil
	}
	r.started = true
	first, err := peekByte(r.br)
	if err != nil {
		return err
	}
	switch first {
	case 0:
		r.done = true
		return nil
	case '[':
		r.layout = layoutArray
	case '{':
		return r.startObject()
	default:
		return fmt.Errorf("%w: unexpected %q at start", ErrMalformed, first)
	}
	if _, err := r.dec.Token(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

// startObject decodes the first top-level object whole. An entry object
// starts JSON Lines; otherwise it is an object keyed by form, whose members
// are then read from the decoded value.
func (r *EntryReader) startObject() error {
	var first json.RawMessage
	if err := r.dec.Decode(&first); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if isEntryObject(first) {
		r.layout = layoutLines
		r.push("", first)
		return nil
	}
	r.layout = layoutObject
	r.dec = json.NewDecoder(bytes.NewReader(first))
	if _, err := r.dec.Token(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

// isEntryObject reports whether obj has at least one string member. Objects
// keyed by form hold only objects or lists.
func isEntryObject(obj json.RawMessage) bool {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(obj, &members); err != nil {
		return false
	}
	for _, v := range members {
		if v = bytes.TrimSpace(v); len(v) > 0 && v[0] == '"' {
			return true
		}
	}
	return false
}

// fill decodes the next element into r.pending or marks the reader done.
func (r *EntryReader) fill() error {
	switch r.layout {
	case layoutLines:
		var raw json.RawMessage
		if err := r.dec.Decode(&raw); err == io.EOF {
			r.done = true
			return nil
		} else if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		r.push("", raw)
	case layoutArray:
		if !r.dec.More() {
			return r.finish()
		}
		var raw json.RawMessage
		if err := r.dec.Decode(&raw); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		r.push("", raw)
	case layoutObject:
		if !r.dec.More() {
			return r.finish()
		}
		tok, err := r.dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		form, _ := tok.(string)
		var raw json.RawMessage
		if err := r.dec.Decode(&raw); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
			var list []json.RawMessage
			if err := json.Unmarshal(raw, &list); err != nil {
				r.skip(form, err)
				return nil
			}
			for _, item := range list {
				r.push(form, item)
			}
			return nil
		}
		r.push(form, raw)
	}
	return nil
}

func (r *EntryReader) finish() error {
	if _, err := r.dec.Token(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	r.done = true
	return nil
}

func (r *EntryReader) push(form string, raw json.RawMessage) {
	e, err := decodeEntry(raw)
	if err != nil {
		r.skip(form, err)
		return
	}
	if e.Form == "" {
		e.Form = form
	}
	r.pending = append(r.pending, e)
}

func (r *EntryReader) skip(form string, err error) {
	r.skipped++
	tracer().Debugf("skipping entry %q: %v", form, err)
}

// decodeEntry maps one loosely shaped JSON object onto a RawEntry.
func decodeEntry(raw json.RawMessage) (cefrlex.RawEntry, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return cefrlex.RawEntry{}, err
	}
	if fields == nil {
		return cefrlex.RawEntry{}, fmt.Errorf("null entry")
	}
	return cefrlex.RawEntry{
		Form:           stringField(fields, "form", "word", "headword"),
		CEFR:           stringField(fields, "CEFR", "cefr", "level"),
		Norm:           stringField(fields, "norm"),
		Tags:           listField(fields, "tags", "pos"),
		Definitions:    listField(fields, "definitions", "definition"),
		AltDefinitions: listField(fields, "definitions_alt", "alt_definitions"),
		Examples:       listField(fields, "examples", "example"),
		Romanization:   stringField(fields, "romanization", "pinyin", "romaji", "reading"),
		Forms:          listField(fields, "forms", "inflections"),
	}, nil
}

// stringField returns the first of names holding a string or a number.
func stringField(fields map[string]json.RawMessage, names ...string) string {
	for _, name := range names {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		if s, ok := asString(raw); ok {
			return s
		}
	}
	return ""
}

func asString(raw json.RawMessage) (string, bool) {
	if t := bytes.TrimSpace(raw); len(t) == 0 || bytes.Equal(t, []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}

// textKeys are tried in order when a list element is an object.
var textKeys = []string{"text", "sentence", "definition", "gloss", "meaning", "translation"}

// listField returns the strings of the first of names that is present.
// A single string counts as a list of one; object elements contribute
// their text field; anything else is ignored.
func listField(fields map[string]json.RawMessage, names ...string) []string {
	for _, name := range names {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		if s, ok := asString(raw); ok {
			return []string{s}
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil
		}
		var out []string
		for _, item := range items {
			if s, ok := asString(item); ok {
				out = append(out, s)
				continue
			}
			var obj map[string]json.RawMessage
			if err := json.Unmarshal(item, &obj); err == nil && obj != nil {
				if s := stringField(obj, textKeys...); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	}
	return nil
}

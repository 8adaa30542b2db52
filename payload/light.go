package payload

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/cefrlex"
)

// LightReader streams cefrlex.RawLightEntry records from a light list.
type LightReader struct {
	br      *bufio.Reader
	scanner *bufio.Scanner
	entries *EntryReader // JSON input
	started bool
	line    int
	skipped int
}

// NewLightReader creates a reader for a light list payload.
func NewLightReader(reader io.Reader) *LightReader {
	return &LightReader{br: bufio.NewReader(reader)}
}

// Skipped is the number of lines dropped for lack of a form or tiers.
func (r *LightReader) Skipped() int { return r.skipped }

// Next returns the next record. It returns io.EOF when exhausted.
func (r *LightReader) Next() (cefrlex.RawLightEntry, error) {
	if !r.started {
		r.started = true
		first, err := peekByte(r.br)
		if err != nil {
			return cefrlex.RawLightEntry{}, err
		}
		if first == '[' {
			r.entries = &EntryReader{br: r.br, dec: json.NewDecoder(r.br)}
		} else {
			r.scanner = bufio.NewScanner(r.br)
		}
	}
	if r.entries != nil {
		return r.nextJSON()
	}
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if e, ok := ParseLightLine(line); ok {
			return e, nil
		}
		r.skipped++
		tracer().Debugf("light list line %d: no tiers in %q", r.line, line)
	}
	if err := r.scanner.Err(); err != nil {
		return cefrlex.RawLightEntry{}, fmt.Errorf("%w: line %d: %v", ErrMalformed, r.line, err)
	}
	return cefrlex.RawLightEntry{}, io.EOF
}

// nextJSON reads light records through the entry decoder, which already
// copes with loose shapes. CEFR may be a single label or a list of labels.
func (r *LightReader) nextJSON() (cefrlex.RawLightEntry, error) {
	for {
		if err := r.entries.start(); err != nil {
			return cefrlex.RawLightEntry{}, err
		}
		if r.entries.done {
			return cefrlex.RawLightEntry{}, io.EOF
		}
		if !r.entries.dec.More() {
			if err := r.entries.finish(); err != nil {
				return cefrlex.RawLightEntry{}, err
			}
			return cefrlex.RawLightEntry{}, io.EOF
		}
		var fields map[string]json.RawMessage
		if err := r.entries.dec.Decode(&fields); err != nil {
			if _, isType := err.(*json.UnmarshalTypeError); isType {
				r.skipped++
				continue
			}
			return cefrlex.RawLightEntry{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		e := cefrlex.RawLightEntry{
			Form: stringField(fields, "form", "word", "headword"),
			Norm: stringField(fields, "norm"),
			CEFR: listField(fields, "CEFR", "cefr", "level", "levels"),
		}
		if e.Form == "" || len(e.CEFR) == 0 {
			r.skipped++
			continue
		}
		return e, nil
	}
}

// ParseLightLine splits one light list line "form<TAB>A1,B2[<TAB>norm]".
// Lines without tabs are split on whitespace instead. ok is false if the
// line lacks a form or tiers.
func ParseLightLine(line string) (e cefrlex.RawLightEntry, ok bool) {
	cols := strings.Split(line, "\t")
	if len(cols) == 1 {
		cols = strings.Fields(line)
	}
	if len(cols) < 2 {
		return cefrlex.RawLightEntry{}, false
	}
	e = cefrlex.RawLightEntry{Form: strings.TrimSpace(cols[0])}
	for _, label := range strings.Split(cols[1], ",") {
		if label = strings.TrimSpace(label); label != "" {
			e.CEFR = append(e.CEFR, label)
		}
	}
	if len(cols) > 2 {
		e.Norm = strings.TrimSpace(cols[2])
	}
	return e, e.Form != "" && len(e.CEFR) > 0
}

/*
Package payload decodes raw dictionary payloads into cefrlex records.

Two formats are read:

Full dictionaries are JSON, either an array of entry objects, JSON Lines (one
object per line), or an object mapping forms to an entry object or a list of
entry objects:

	[
	  {"form": "ami", "CEFR": "A1", "definitions": ["friend"]},
	  {"form": "école", "level": "A2", "examples": [{"text": "à l'école"}]}
	]

Field shapes are tolerated loosely: list fields accept a single string, a list
of strings or a list of objects with a text field; an entry that is not an
object is skipped.

Light lists are plain text, one form per line with comma-separated tiers and
an optional norm, separated by tabs. '#' starts a comment line:

	# form	tiers	norm
	perro	A1
	correr	A1,C1
	Mädchen	A1	maedchen

A JSON array of {"form", "CEFR", "norm"} objects is accepted as well.
*/
package payload

import (
	"bufio"
	"errors"
	"io"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/cefrlex"
)

// ErrMalformed is returned when a payload stream cannot be parsed any further.
var ErrMalformed = errors.New("malformed payload")

// tracer writes to trace with key 'cefrlex.payload'
func tracer() tracing.Trace {
	return tracing.Select("cefrlex.payload")
}

// LoadIndex decodes a full dictionary and builds its index.
func LoadIndex(lang cefrlex.Language, reader io.Reader) (*cefrlex.Index, error) {
	return cefrlex.LoadIndex(lang, NewEntryReader(reader))
}

// LoadLightIndex decodes a light list and builds its index.
func LoadLightIndex(lang cefrlex.Language, reader io.Reader) (*cefrlex.LightIndex, error) {
	return cefrlex.LoadLightIndex(lang, NewLightReader(reader))
}

// ReadEntries decodes a full dictionary into memory.
func ReadEntries(reader io.Reader) ([]cefrlex.RawEntry, error) {
	r := NewEntryReader(reader)
	var entries []cefrlex.RawEntry
	for {
		e, err := r.Next()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
}

// ReadLight decodes a light list into memory.
func ReadLight(reader io.Reader) ([]cefrlex.RawLightEntry, error) {
	r := NewLightReader(reader)
	var entries []cefrlex.RawLightEntry
	for {
		e, err := r.Next()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
}

// peekByte returns the first byte that is neither whitespace nor a byte
// order mark, without consuming it. It returns 0 for empty input.
func peekByte(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.Peek(1)
		if err == io.EOF {
			return 0, nil
		}
		if err != nil {
			return 0, err
		}
		switch b[0] {
		case ' ', '\t', '\r', '\n':
			br.ReadByte()
			continue
		case 0xEF: // UTF-8 BOM
			if bom, _ := br.Peek(3); len(bom) == 3 && bom[1] == 0xBB && bom[2] == 0xBF {
				br.Discard(3)
				continue
			}
		}
		return b[0], nil
	}
}

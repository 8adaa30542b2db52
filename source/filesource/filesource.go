/*
Package filesource reads dictionary payloads from a directory:

	<dir>/<lang>.json        full dictionary (see package payload)
	<dir>/<lang>.light.tsv   light list
	<dir>/<lang>.light.json  light list as JSON, used if there is no .tsv

Files are memory-mapped while they are decoded.
*/
package filesource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"

	"github.com/npillmayer/cefrlex"
	"github.com/npillmayer/cefrlex/payload"
	"github.com/npillmayer/cefrlex/source"
)

// Source is a source.Fetcher over a directory.
type Source struct {
	dir string
}

var _ source.Fetcher = (*Source)(nil)

// New creates a source reading from dir.
func New(dir string) *Source {
	return &Source{dir: dir}
}

// FetchEntries decodes <dir>/<lang>.json.
func (s *Source) FetchEntries(ctx context.Context, lang cefrlex.Language) ([]cefrlex.RawEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var entries []cefrlex.RawEntry
	err := s.withFile(string(lang)+".json", func(data []byte) (err error) {
		entries, err = payload.ReadEntries(bytes.NewReader(data))
		return err
	})
	return entries, err
}

// FetchLight decodes <dir>/<lang>.light.tsv or <dir>/<lang>.light.json.
func (s *Source) FetchLight(ctx context.Context, lang cefrlex.Language) ([]cefrlex.RawLightEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var entries []cefrlex.RawLightEntry
	read := func(data []byte) (err error) {
		entries, err = payload.ReadLight(bytes.NewReader(data))
		return err
	}
	err := s.withFile(string(lang)+".light.tsv", read)
	if errors.Is(err, source.ErrNoPayload) {
		err = s.withFile(string(lang)+".light.json", read)
	}
	return entries, err
}

// withFile maps name read-only and hands its contents to fn. The mapping is
// released when fn returns, so fn must not retain data.
func (s *Source) withFile(name string, fn func(data []byte) error) error {
	path := filepath.Join(s.dir, name)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", path, source.ErrNoPayload)
	}
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		// empty files cannot be mapped
		return fn(nil)
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("mmap %s: %w", path, err)
	}
	defer m.Unmap()
	if err := fn(m); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

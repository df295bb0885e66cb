package resource

import (
	"io"
	"os"

	"github.com/adventcore/advent/internal/errs"
	"github.com/rs/zerolog/log"
)

// Source reads an exact byte range out of the resource blob. FileSource is
// the production implementation (ADVENT.RES on disk); tests and
// diagnostics can supply a BufferSource instead.
type Source interface {
	ReadAt(offset uint32, length uint32) ([]byte, error)
}

// FileSource opens, seeks, reads, and closes ADVENT.RES on every call,
// exactly like the original engine's loadResource: it never keeps a
// file handle open across loads.
type FileSource struct {
	Path string
}

func (s FileSource) ReadAt(offset uint32, length uint32) (data []byte, err error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, errs.Wrapf(err, "opening %s", s.Path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errs.Wrapf(cerr, "closing %s", s.Path)
		}
	}()

	if _, err = f.Seek(int64(offset), 0); err != nil {
		return nil, errs.Wrapf(err, "seeking %s to %d", s.Path, offset)
	}

	data = make([]byte, length)
	if _, err = io.ReadFull(f, data); err != nil {
		return nil, errs.Newf(errs.TruncatedInput, s.Path, int64(offset),
			"short read of %d bytes: %v", length, err)
	}
	return data, nil
}

// BufferSource serves reads out of an in-memory blob, for tests and for
// the CLI's diagnostic commands when the whole file is already loaded.
type BufferSource []byte

func (s BufferSource) ReadAt(offset uint32, length uint32) ([]byte, error) {
	end := uint64(offset) + uint64(length)
	if end > uint64(len(s)) {
		return nil, errs.Newf(errs.OutOfBounds, "ADVENT.RES", int64(offset),
			"range [%d,%d) exceeds buffer length %d", offset, end, len(s))
	}
	out := make([]byte, length)
	copy(out, s[offset:end])
	return out, nil
}

// Loader resolves resource ids against an Index and pulls their bytes
// out of a Source.
type Loader struct {
	Index  *Index
	Source Source
}

// NewLoader pairs a parsed index with a resource-data source.
func NewLoader(idx *Index, src Source) *Loader {
	return &Loader{Index: idx, Source: src}
}

// Load returns the raw bytes for id, or MissingResource if it is not
// present in the index.
func (l *Loader) Load(id Id) ([]byte, error) {
	entry, ok := l.Index.Lookup(id)
	if !ok {
		return nil, errs.Newf(errs.MissingResource, "ADVENT.IDX", 0,
			"no entry for type=0x%x name=%q", id.Type, id.Name)
	}

	data, err := l.Source.ReadAt(entry.Offset, entry.Length)
	if err != nil {
		return nil, errs.Wrapf(err, "loading type=0x%x name=%q", id.Type, id.Name)
	}

	log.Debug().Str("name", id.Name).Uint32("type", uint32(id.Type)).
		Int("length", len(data)).Msg("loaded resource")
	return data, nil
}

package resource

import (
	"github.com/adventcore/advent/internal/byteio"
	"github.com/adventcore/advent/internal/errs"
	"github.com/rs/zerolog/log"
)

// Index is the parsed contents of ADVENT.IDX: a lookup table keyed by
// (type, name), plus the insertion order for diagnostic dumps.
type Index struct {
	entries map[Id]Entry
	order   []Id
}

// Len returns the number of distinct resources in the index.
func (idx *Index) Len() int { return len(idx.order) }

// Lookup returns the entry for id, or (Entry{}, false) if absent.
func (idx *Index) Lookup(id Id) (Entry, bool) {
	e, ok := idx.entries[id]
	return e, ok
}

// Ids returns every resource id in the order the index file listed them.
func (idx *Index) Ids() []Id {
	out := make([]Id, len(idx.order))
	copy(out, idx.order)
	return out
}

// ParseIndex reads a complete ADVENT.IDX buffer: a u32 record count
// followed by that many {name, type, offset, length} records. This
// resolves the original engine's ambiguous header framing (a stray
// 2-byte "signature" read in an earlier revision versus the u32 count
// the shipped run() loop actually reads) in favor of the u32 count, per
// the reverse-engineered source.
func ParseIndex(buf []byte) (*Index, error) {
	r := byteio.NewReader(buf, "ADVENT.IDX")
	count, err := r.ReadU32LE()
	if err != nil {
		return nil, err
	}

	idx := &Index{
		entries: make(map[Id]Entry, count),
		order:   make([]Id, 0, count),
	}

	for i := uint32(0); i < count; i++ {
		name, err := r.ReadPascalString()
		if err != nil {
			return nil, errs.Wrapf(err, "reading name of record %d", i)
		}
		typ, err := r.ReadU32LE()
		if err != nil {
			return nil, errs.Wrapf(err, "reading type of record %d (%s)", i, name)
		}
		offset, err := r.ReadU32LE()
		if err != nil {
			return nil, errs.Wrapf(err, "reading offset of record %d (%s)", i, name)
		}
		length, err := r.ReadU32LE()
		if err != nil {
			return nil, errs.Wrapf(err, "reading length of record %d (%s)", i, name)
		}

		id := Id{Type: Type(typ), Name: name}
		if _, dup := idx.entries[id]; dup {
			return nil, errs.Newf(errs.DuplicateKey, "ADVENT.IDX", r.Pos(),
				"duplicate entry for type=0x%x name=%q", typ, name)
		}

		idx.entries[id] = Entry{Offset: offset, Length: length}
		idx.order = append(idx.order, id)
		log.Debug().Uint32("index", i).Str("name", name).Uint32("type", typ).
			Uint32("offset", offset).Uint32("length", length).Msg("found resource")
	}

	log.Debug().Int("count", idx.Len()).Msg("parsed ADVENT.IDX")
	return idx, nil
}

// Package byteio provides the little-endian cursor every resource, codec,
// and container parser in this module reads from. Resources are always
// loaded whole before decoding, so a cursor over an in-memory slice is
// enough; there is no streaming io.Reader underneath.
package byteio

import (
	"hash/fnv"

	"github.com/adventcore/advent/internal/errs"
)

// Reader is a cursor over an already-loaded byte slice.
type Reader struct {
	buf    []byte
	pos    int
	Stream string
}

// NewReader wraps buf for sequential little-endian reads. stream is used
// only for diagnostics (the name reported in errs.Error.Stream).
func NewReader(buf []byte, stream string) *Reader {
	return &Reader{buf: buf, Stream: stream}
}

// Pos returns the current cursor offset.
func (self *Reader) Pos() int64 { return int64(self.pos) }

// Size returns the total length of the wrapped buffer.
func (self *Reader) Size() int64 { return int64(len(self.buf)) }

// Remaining returns the number of unread bytes.
func (self *Reader) Remaining() int { return len(self.buf) - self.pos }

func (self *Reader) truncated(need int) error {
	return errs.Newf(errs.TruncatedInput, self.Stream, int64(self.pos),
		"need %d bytes, have %d", need, self.Remaining())
}

// Seek moves the cursor to an absolute offset.
func (self *Reader) Seek(abs int64) (err error) {
	if abs < 0 || abs > int64(len(self.buf)) {
		return errs.Newf(errs.OutOfBounds, self.Stream, abs, "seek out of range (size=%d)", len(self.buf))
	}
	self.pos = int(abs)
	return nil
}

// Skip advances the cursor by n bytes.
func (self *Reader) Skip(n int) (err error) {
	if n < 0 || self.Remaining() < n {
		return self.truncated(n)
	}
	self.pos += n
	return nil
}

// ReadByte reads a single byte.
func (self *Reader) ReadByte() (v byte, err error) {
	if self.Remaining() < 1 {
		return 0, self.truncated(1)
	}
	v = self.buf[self.pos]
	self.pos++
	return v, nil
}

// ReadU16LE reads a little-endian uint16.
func (self *Reader) ReadU16LE() (v uint16, err error) {
	if self.Remaining() < 2 {
		return 0, self.truncated(2)
	}
	v = uint16(self.buf[self.pos]) | uint16(self.buf[self.pos+1])<<8
	self.pos += 2
	return v, nil
}

// ReadU32LE reads a little-endian uint32.
func (self *Reader) ReadU32LE() (v uint32, err error) {
	if self.Remaining() < 4 {
		return 0, self.truncated(4)
	}
	v = uint32(self.buf[self.pos]) | uint32(self.buf[self.pos+1])<<8 |
		uint32(self.buf[self.pos+2])<<16 | uint32(self.buf[self.pos+3])<<24
	self.pos += 4
	return v, nil
}

// ReadBytes reads exactly n raw bytes.
func (self *Reader) ReadBytes(n int) (v []byte, err error) {
	if n < 0 || self.Remaining() < n {
		return nil, self.truncated(n)
	}
	v = make([]byte, n)
	copy(v, self.buf[self.pos:self.pos+n])
	self.pos += n
	return v, nil
}

// PeekByte returns the next byte without advancing the cursor.
func (self *Reader) PeekByte() (v byte, err error) {
	if self.Remaining() < 1 {
		return 0, self.truncated(1)
	}
	return self.buf[self.pos], nil
}

// ReadPascalString reads a one-byte length prefix followed by that many
// ASCII bytes, with no terminator.
func (self *Reader) ReadPascalString() (s string, err error) {
	n, err := self.ReadByte()
	if err != nil {
		return "", err
	}
	raw, err := self.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// HashName mixes a resource name into a stable uint32, used as the
// non-type half of a ResourceId hash. The original engine hashes with
// ScummVM's Common::String::hash() (an FNV-1 variant); this module uses
// Go's hash/fnv for an equivalent stable mixer rather than porting
// ScummVM's exact seed table.
func HashName(name string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return h.Sum32()
}

// Package palette decodes the two palette encodings this module sees: a
// ranged chunk embedded in FMV streams, and a standalone 786-byte
// resource with an 18-byte header.
package palette

import "github.com/adventcore/advent/internal/errs"

// Palette is 256 RGB entries, 8 bits per channel.
type Palette [256][3]byte

// DecodeChunk applies a ranged palette chunk (start, end, 6-bit RGB
// triples for [start,end]) onto p, left-shifting each 6-bit channel by 2
// to produce 8-bit values. Entries outside [start,end] are untouched.
func DecodeChunk(p *Palette, chunk []byte) error {
	if len(chunk) < 2 {
		return errs.Newf(errs.TruncatedInput, "", 0, "palette chunk shorter than header (%d bytes)", len(chunk))
	}
	start, end := chunk[0], chunk[1]
	total := (int(end) - int(start) + 1) * 3
	if total < 0 {
		return errs.Newf(errs.Corrupt, "", 0, "palette chunk has end=%d before start=%d", end, start)
	}
	if len(chunk) < 2+total {
		return errs.Newf(errs.TruncatedInput, "", 0, "palette chunk declares %d body bytes, has %d", total, len(chunk)-2)
	}

	in := chunk[2:]
	idx := int(start)
	for i := 0; i < total; i += 3 {
		p[idx][0] = in[i] << 2
		p[idx][1] = in[i+1] << 2
		p[idx][2] = in[i+2] << 2
		idx++
	}
	return nil
}

// DecodeStandalone decodes a type-0x03 palette resource: an 18-byte
// header (format unidentified by the original engine, only the length
// is validated) followed by 768 bytes of 6-bit RGB. Any length other
// than 786 is a compressed palette, which this module does not support,
// matching the original's behavior of bailing out rather than guessing.
func DecodeStandalone(data []byte) (*Palette, error) {
	const headerLen = 18
	const wantLen = 786
	if len(data) != wantLen {
		return nil, errs.Newf(errs.Corrupt, "", 0,
			"palette is not of the right length (%d != %d); compressed palettes are not supported", len(data), wantLen)
	}

	var p Palette
	body := data[headerLen:]
	for i := 0; i < 256; i++ {
		p[i][0] = body[i*3+0] << 2
		p[i][1] = body[i*3+1] << 2
		p[i][2] = body[i*3+2] << 2
	}
	return &p, nil
}

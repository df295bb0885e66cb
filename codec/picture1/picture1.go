// Package picture1 decodes the scan-line RLE picture format used for
// backgrounds, sprite/cursor frames, and low-complexity FMV frames.
package picture1

import (
	"github.com/adventcore/advent/internal/errs"
	"github.com/adventcore/advent/surface"
)

// boundsCheckRow reports whether writing n bytes starting at col would
// run off the end of row, surfacing OutOfBounds instead of letting a
// corrupt over-long run panic on a raw slice write.
func boundsCheckRow(row []byte, col, n int, offset int) error {
	if col < 0 || n < 0 || col+n > len(row) {
		return errs.Newf(errs.OutOfBounds, "picture1", int64(offset), "line write col=%d n=%d exceeds row capacity %d", col, n, len(row))
	}
	return nil
}

// Decode renders a picture1 stream into dst, compositing at the given
// (x0, bltY0) origin. It returns the number of bytes of buf consumed.
//
// The stream is organized into slabs: a scan-line band sharing one (y0,
// height) origin. After a slab's lines are decoded the stream carries a
// (skip_y, next_height) tail; next_height == 0 ends the picture, and
// running out of input ends it too (a picture that ends exactly on a
// slab boundary is not an error).
func Decode(buf []byte, dst *surface.Surface, x0, bltY0 int) (consumed int, err error) {
	if len(buf) < 9 {
		return 0, errs.Newf(errs.TruncatedInput, "picture1", 0, "header needs 9 bytes, have %d", len(buf))
	}

	width := int(buf[1]) | int(buf[2])<<8
	y0 := int(buf[5]) | int(buf[6])<<8
	height := int(buf[7]) | int(buf[8])<<8

	offset := 9
	for offset < len(buf) {
		for y := 0; y < height; y++ {
			row, err := dst.Row(x0, y+y0+bltY0)
			if err != nil {
				return offset, err
			}

			if offset >= len(buf) {
				return offset, errs.Newf(errs.TruncatedInput, "picture1", int64(offset), "stream ended mid scanline")
			}
			lineType := buf[offset]
			offset++

			switch lineType {
			case 0x00:
				if offset+width > len(buf) {
					return offset, errs.Newf(errs.TruncatedInput, "picture1", int64(offset), "raw line needs %d bytes", width)
				}
				if err := boundsCheckRow(row, 0, width, offset); err != nil {
					return offset, err
				}
				copy(row, buf[offset:offset+width])
				offset += width

			case 0x01:
				col := 0
				for {
					if offset >= len(buf) {
						return offset, errs.Newf(errs.TruncatedInput, "picture1", int64(offset), "RLE line truncated")
					}
					times := buf[offset]
					offset++
					if times == 0 {
						break
					} else if times < 0x80 {
						if offset >= len(buf) {
							return offset, errs.Newf(errs.TruncatedInput, "picture1", int64(offset), "RLE run missing color byte")
						}
						color := buf[offset]
						offset++
						if err := boundsCheckRow(row, col, int(times), offset); err != nil {
							return offset, err
						}
						for ; times > 0; times-- {
							row[col] = color
							col++
						}
					} else {
						n := 256 - int(times)
						if offset+n > len(buf) {
							return offset, errs.Newf(errs.TruncatedInput, "picture1", int64(offset), "literal run needs %d bytes", n)
						}
						if err := boundsCheckRow(row, col, n, offset); err != nil {
							return offset, err
						}
						copy(row[col:col+n], buf[offset:offset+n])
						offset += n
						col += n
					}
				}

			case 0x02:
				col := 0
				for {
					if offset >= len(buf) {
						return offset, errs.Newf(errs.TruncatedInput, "picture1", int64(offset), "skip line truncated")
					}
					times := int(buf[offset])
					offset++
					if times == 0 {
						break
					}
					if times >= 0x80 {
						n := 0x100 - times
						if offset+n > len(buf) {
							return offset, errs.Newf(errs.TruncatedInput, "picture1", int64(offset), "literal run needs %d bytes", n)
						}
						if err := boundsCheckRow(row, col, n, offset); err != nil {
							return offset, err
						}
						copy(row[col:col+n], buf[offset:offset+n])
						offset += n
						col += n
					} else {
						col += times
					}
				}

			case 0x03:
				if offset >= len(buf) {
					return offset, errs.Newf(errs.TruncatedInput, "picture1", int64(offset), "type-3 line missing initial skip")
				}
				col := int(buf[offset])
				offset++
				for {
					if offset >= len(buf) {
						return offset, errs.Newf(errs.TruncatedInput, "picture1", int64(offset), "type-3 line truncated")
					}
					times := buf[offset]
					offset++
					if times < 0x80 && times > 0 {
						if offset >= len(buf) {
							return offset, errs.Newf(errs.TruncatedInput, "picture1", int64(offset), "type-3 run missing color byte")
						}
						c := buf[offset]
						offset++
						if err := boundsCheckRow(row, col, int(times), offset); err != nil {
							return offset, err
						}
						for ; times > 0; times-- {
							row[col] = c
							col++
						}
					} else if times >= 0x80 {
						n := 0x100 - int(times)
						if offset+n > len(buf) {
							return offset, errs.Newf(errs.TruncatedInput, "picture1", int64(offset), "type-3 literal needs %d bytes", n)
						}
						if err := boundsCheckRow(row, col, n, offset); err != nil {
							return offset, err
						}
						copy(row[col:col+n], buf[offset:offset+n])
						offset += n
						col += n
					}
					// times == 0: consumed as a zero-length run/literal;
					// fall through to read the next skip byte, matching
					// the original's lack of an early break here.

					if offset >= len(buf) {
						return offset, errs.Newf(errs.TruncatedInput, "picture1", int64(offset), "type-3 line missing terminator")
					}
					skip := buf[offset]
					offset++
					if skip == 0xff {
						break
					}
					col += int(skip)
				}

			case 0x04:
				// no-op line: row left untouched, no bytes consumed

			default:
				return offset, errs.Newf(errs.UnknownOpcode, "picture1", int64(offset-1), "unknown line type 0x%02x", lineType)
			}
		}

		y0 += height

		if offset+4 > len(buf) {
			// Input ends exactly at the slab boundary: a clean end of
			// stream, not a truncation.
			return offset, nil
		}
		skipY := int(buf[offset]) | int(buf[offset+1])<<8
		newHeight := int(buf[offset+2]) | int(buf[offset+3])<<8
		offset += 4
		y0 += skipY
		if newHeight == 0 {
			break
		}
		height = newHeight
	}

	return offset, nil
}

package picture4

import "github.com/adventcore/advent/internal/errs"

// decodeBrun16 ports put_block_brun16: a nibble-packed RLE with a 1-bit
// phase selecting which half of the current byte is live. Two nibbles
// (skip count, draw count) are read per command, both indexed by the
// same live phase — phase 0 reads buf[pos]'s high nibble, phase 1 reads
// buf[pos]'s low nibble — matching crux.cpp's
// `(*buffer >> ((1 - local_3c) * 4)) & 0x0f`. When the draw count is
// non-zero a further nibble-indexed color is fetched for the wrapped
// segment, and a nibble-indexed color is fetched per pixel for the
// "skip-run" segment.
func decodeBrun16(buf []byte, pos int, pixels []byte, to int, pitch int, blockWidth int, st *blockState) (newPos int, err error) {
	if pos >= len(buf) {
		return pos, errs.Newf(errs.TruncatedInput, "picture4", int64(pos), "brun16 block missing total_count byte")
	}
	b := int(buf[pos])
	pos++
	if b != 0xff {
		n := minInt(b, 16)
		if pos+n > len(buf) {
			return pos, errs.Newf(errs.TruncatedInput, "picture4", int64(pos), "brun16 color table needs %d bytes", n)
		}
		st.colorTable = buf[pos : pos+n]
		pos += n
		st.totalCount = b
	}

	direction := 1
	phase := 0
	var color byte
	d := to + blockWidth

	nibbleAt := func(p, ph int) (int, error) {
		if p >= len(buf) {
			return 0, errs.Newf(errs.TruncatedInput, "picture4", int64(p), "brun16 stream truncated")
		}
		return (int(buf[p]) >> ((1 - ph) * 4)) & 0x0f, nil
	}
	colorAt := func(idx int, p int) (byte, error) {
		if idx >= len(st.colorTable) {
			return 0, errs.Newf(errs.Corrupt, "picture4", int64(p), "brun16 color index %d outside table of %d", idx, len(st.colorTable))
		}
		return st.colorTable[idx], nil
	}

	for {
		hi, err := nibbleAt(pos, phase)
		if err != nil {
			return pos, err
		}
		if pos+phase >= len(buf) {
			return pos, errs.Newf(errs.TruncatedInput, "picture4", int64(pos), "brun16 stream truncated")
		}
		lo := (int(buf[pos+phase]) >> (phase * 4)) & 0x0f
		pos++
		if hi == 0 && lo == 0 {
			break
		}

		if lo != 0 {
			idx, err := nibbleAt(pos, phase)
			if err != nil {
				return pos, err
			}
			color, err = colorAt(idx, pos)
			if err != nil {
				return pos, err
			}
			pos += phase
			phase ^= 1
		}

		dist := absInt(d - to)
		if hi != 0 && dist <= hi {
			for to != d {
				idx, err := nibbleAt(pos, phase)
				if err != nil {
					return pos, err
				}
				c, err := colorAt(idx, pos)
				if err != nil {
					return pos, err
				}
				if err := writePixel(pixels, to, c); err != nil {
					return pos, err
				}
				pos += phase
				phase ^= 1
				to += direction
			}
			d += pitch - (blockWidth+1)*direction
			to += pitch - direction
			direction = -direction
			hi -= dist
		}

		end := to + hi*direction
		for to != end {
			idx, err := nibbleAt(pos, phase)
			if err != nil {
				return pos, err
			}
			c, err := colorAt(idx, pos)
			if err != nil {
				return pos, err
			}
			if err := writePixel(pixels, to, c); err != nil {
				return pos, err
			}
			pos += phase
			phase ^= 1
			to += direction
		}

		if lo != 0 {
			dist = absInt(d - to)
			if lo < dist {
				for lo > 0 {
					if err := writePixel(pixels, to, color); err != nil {
						return pos, err
					}
					to += direction
					lo--
				}
			} else {
				for to != d {
					if err := writePixel(pixels, to, color); err != nil {
						return pos, err
					}
					to += direction
				}
				d += pitch - (blockWidth+1)*direction
				to += pitch - direction
				direction = -direction
				lo -= dist
				for lo > 0 {
					if err := writePixel(pixels, to, color); err != nil {
						return pos, err
					}
					to += direction
					lo--
				}
			}
		}
	}

	if phase != 0 {
		pos++
	}

	return pos, nil
}

package picture4

import "github.com/adventcore/advent/internal/errs"

// decodeSkip8 ports dput_block_skip8: a command byte with 3 bits of
// color-table index and 5 bits of count, consumed at the top of each
// loop iteration like skip16.
func decodeSkip8(buf []byte, pos int, pixels []byte, to int, pitch int, blockWidth int, st *blockState) (newPos int, err error) {
	tto := to
	direction := 1

	if pos >= len(buf) {
		return pos, errs.Newf(errs.TruncatedInput, "picture4", int64(pos), "skip8 block missing total_count byte")
	}
	total := int(buf[pos])
	pos++
	if total != 0xff {
		n := minInt(total, 8)
		if pos+n > len(buf) {
			return pos, errs.Newf(errs.TruncatedInput, "picture4", int64(pos), "skip8 color table needs %d bytes", n)
		}
		st.colorTable = buf[pos : pos+n]
		st.totalCount = total
		pos += n
	}
	total = st.totalCount

	c := to + blockWidth

	for {
		if pos >= len(buf) {
			return pos, errs.Newf(errs.TruncatedInput, "picture4", int64(pos), "skip8 block stream truncated")
		}
		if buf[pos] == 0x00 {
			break
		}
		cmd := buf[pos]
		pos++

		if cmd&0xf8 == 0 {
			a := absInt(c - to)
			b := int(cmd)
			for a <= b {
				b -= a
				to = c + pitch - direction
				c = c + pitch - (blockWidth+1)*direction
				direction = -direction
				a = blockWidth
			}
			to = to + b*direction
		} else {
			idx := cmd & 0x07
			if int(idx) >= len(st.colorTable) {
				return pos, errs.Newf(errs.Corrupt, "picture4", int64(pos), "skip8 color index %d outside table of %d", idx, len(st.colorTable))
			}
			color := st.colorTable[idx]
			count := int((cmd >> 3) & 0x1f)
			f := absInt(c - to)
			// A run that exactly fits the rest of the row stays on it;
			// the wrap happens only when count exceeds the remainder.
			if f < count {
				for to != c {
					if err := writePixel(pixels, to, color); err != nil {
						return pos, err
					}
					to += direction
				}
				c += pitch - (blockWidth+1)*direction
				to += pitch - direction
				direction = -direction
				count -= f
			}
			for i := 0; i < count; i++ {
				if err := writePixel(pixels, to, color); err != nil {
					return pos, err
				}
				to += direction
			}
		}
	}
	pos++ // skip terminating 0

	for i := 8; i < total; i++ {
		pos, err = decodeSingleColumn(buf, pos, pixels, tto, pitch, blockWidth)
		if err != nil {
			return pos, err
		}
	}

	return pos, nil
}

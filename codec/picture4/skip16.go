package picture4

import "github.com/adventcore/advent/internal/errs"

// decodeSkip16 ports dput_block_skip16: a nibble-split command byte
// (high nibble count, low nibble color-table index), consumed at the
// top of each loop iteration (unlike skip64's peek-then-defer idiom).
func decodeSkip16(buf []byte, pos int, pixels []byte, to int, pitch int, blockWidth int, st *blockState) (newPos int, err error) {
	tto := to
	direction := 1

	if pos >= len(buf) {
		return pos, errs.Newf(errs.TruncatedInput, "picture4", int64(pos), "skip16 block missing total_count byte")
	}
	total := int(buf[pos])
	pos++
	if total != 0xff {
		n := minInt(total, 16)
		if pos+n > len(buf) {
			return pos, errs.Newf(errs.TruncatedInput, "picture4", int64(pos), "skip16 color table needs %d bytes", n)
		}
		st.colorTable = buf[pos : pos+n]
		st.totalCount = total
		pos += n
	}
	total = st.totalCount

	c := to + blockWidth

	for {
		if pos >= len(buf) {
			return pos, errs.Newf(errs.TruncatedInput, "picture4", int64(pos), "skip16 block stream truncated")
		}
		if buf[pos] == 0 {
			break
		}
		cmd := buf[pos]
		pos++

		if cmd&0xf0 == 0 {
			skipDist := absInt(c - to)
			skipCount := int(cmd)
			for skipDist <= skipCount {
				skipCount -= skipDist
				to = c + pitch - direction
				c = c + pitch - (blockWidth+1)*direction
				direction = -direction
				skipDist = blockWidth
			}
			to += skipCount * direction
		} else {
			idx := cmd & 0x0f
			if int(idx) >= len(st.colorTable) {
				return pos, errs.Newf(errs.Corrupt, "picture4", int64(pos), "skip16 color index %d outside table of %d", idx, len(st.colorTable))
			}
			color := st.colorTable[idx]
			count := int((cmd & 0xf0) >> 4)
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
			h := to + count*direction
			for to != h {
				if err := writePixel(pixels, to, color); err != nil {
					return pos, err
				}
				to += direction
			}
		}
	}
	pos++ // skip terminating 0

	for i := 16; i < total; i++ {
		pos, err = decodeSingleColumn(buf, pos, pixels, tto, pitch, blockWidth)
		if err != nil {
			return pos, err
		}
	}

	return pos, nil
}

package picture4

import "github.com/adventcore/advent/internal/errs"

// decodeSkip64 ports put_block_skip64: an 8-bit command byte, high two
// bits select "skip" (00) versus "draw 1-3 copies of color_table[byte&0x3f]"
// (01/10/11). The command byte is re-peeked (not consumed) for the loop
// condition and only advances past it at the very end of the loop body —
// this differs from skip16/skip8's consume-then-test idiom; that
// asymmetry is preserved rather than normalized (see design notes).
func decodeSkip64(buf []byte, pos int, pixels []byte, to int, pitch int, blockWidth int, st *blockState) (newPos int, err error) {
	tto := to
	direction := 1

	if pos >= len(buf) {
		return pos, errs.Newf(errs.TruncatedInput, "picture4", int64(pos), "skip64 block missing total_count byte")
	}
	c := int(buf[pos])
	pos++
	if c != 0xff {
		n := minInt(0x40, c)
		if pos+n > len(buf) {
			return pos, errs.Newf(errs.TruncatedInput, "picture4", int64(pos), "skip64 color table needs %d bytes", n)
		}
		st.colorTable = buf[pos : pos+n]
		st.totalCount = c
		pos += n
	}
	c = st.totalCount

	d := to + blockWidth

	for {
		if pos >= len(buf) {
			return pos, errs.Newf(errs.TruncatedInput, "picture4", int64(pos), "skip64 block stream truncated")
		}
		cmd := buf[pos]
		if cmd == 0 {
			break
		}

		if cmd&0xc0 == 0 {
			dist := absInt(d - to)
			count := int(cmd)
			for dist <= count {
				count -= dist
				to = d + pitch - direction
				d = d + pitch - (blockWidth+1)*direction
				direction = -direction
				dist = blockWidth
			}
			to = to + count*direction
		} else {
			if int(cmd&0x3f) >= len(st.colorTable) {
				return pos, errs.Newf(errs.Corrupt, "picture4", int64(pos), "skip64 color index %d outside table of %d", cmd&0x3f, len(st.colorTable))
			}
			color := st.colorTable[cmd&0x3f]
			count := int((cmd & 0xc0) >> 6)
			dist := absInt(d - to)
			for dist <= count {
				for to != d {
					if err := writePixel(pixels, to, color); err != nil {
						return pos, err
					}
					to += direction
				}
				d = d + pitch - (blockWidth+1)*direction
				to += pitch - direction
				direction = -direction
				count -= dist
				dist = absInt(d - to)
			}
			end := to + count*direction
			for to != end {
				if err := writePixel(pixels, to, color); err != nil {
					return pos, err
				}
				to += direction
			}
		}

		pos++
	}
	pos++ // skip terminating 0

	for i := 0x40; i < c; i++ {
		pos, err = decodeSingleColumn(buf, pos, pixels, tto, pitch, blockWidth)
		if err != nil {
			return pos, err
		}
	}

	return pos, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

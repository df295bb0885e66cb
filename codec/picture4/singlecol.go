package picture4

import "github.com/adventcore/advent/internal/errs"

// decodeSingleColumn ports put_single_col: the tail-column escape shared
// by skip64/skip16/skip8 when a block's total_count exceeds its table
// capacity. It reuses the serpentine traversal but the data describes a
// single sparse column rather than the whole block.
func decodeSingleColumn(buf []byte, pos int, pixels []byte, tto int, pitch int, blockWidth int) (newPos int, err error) {
	b := tto
	direction := 1
	d := tto + blockWidth

	if pos >= len(buf) {
		return pos, errs.Newf(errs.TruncatedInput, "picture4", int64(pos), "single-column stream missing color byte")
	}
	color := buf[pos]
	pos++

	for {
		if pos >= len(buf) {
			return pos, errs.Newf(errs.TruncatedInput, "picture4", int64(pos), "single-column stream truncated")
		}
		if buf[pos] == 0xff {
			break
		}

		if buf[pos] <= 0xee {
			f := absInt(d - b)
			g := int(buf[pos])
			for f <= g {
				g -= f
				b = d + pitch - direction
				d = d + pitch - direction*(blockWidth+1)
				direction = -direction
				f = blockWidth
			}
			b += g * direction
		} else {
			h := int(buf[pos]) - 0xee
			i := absInt(d - b)
			for i <= h {
				for b != d {
					if err := writePixel(pixels, b, color); err != nil {
						return pos, err
					}
					b += direction
				}
				d += pitch - direction*(blockWidth+1)
				b += pitch - direction
				direction = -direction
				h -= i
				i = blockWidth
			}
			end := b + h*direction
			for b != end {
				if err := writePixel(pixels, b, color); err != nil {
					return pos, err
				}
				b += direction
			}
		}

		pos++
	}
	pos++ // skip terminating 0xff

	return pos, nil
}

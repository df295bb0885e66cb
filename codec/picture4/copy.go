package picture4

import "github.com/adventcore/advent/internal/errs"

// decodeCopy ports put_block_copy: a raw pixel dump walked in
// boustrophedon order — row 0 left-to-right, row 1 right-to-left, and so
// on — two rows per loop iteration. blockHeight must be even for the
// traversal to land back on the left edge; Decode checks only that the
// blocks tile the image, not that blockHeight is even.
func decodeCopy(buf []byte, pos int, pixels []byte, to int, pitch int, blockWidth int, blockHeight int) (newPos int, err error) {
	for blocky := blockHeight; blocky > 0; blocky -= 2 {
		end := to + blockWidth
		for to < end {
			if pos >= len(buf) {
				return pos, errs.Newf(errs.TruncatedInput, "picture4", int64(pos), "raw copy block truncated")
			}
			if err := writePixel(pixels, to, buf[pos]); err != nil {
				return pos, err
			}
			pos++
			to++
		}

		to += pitch - 1
		end2 := to - blockWidth
		for end2 < to {
			if pos >= len(buf) {
				return pos, errs.Newf(errs.TruncatedInput, "picture4", int64(pos), "raw copy block truncated")
			}
			if err := writePixel(pixels, to, buf[pos]); err != nil {
				return pos, err
			}
			pos++
			to--
		}

		to += pitch + 1
	}

	return pos, nil
}

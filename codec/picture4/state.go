// Package picture4 decodes the block-coded picture format used for most
// FMV frames: the image is tiled into blockWidth x blockHeight blocks,
// each independently dispatched to one of five sub-codecs that share a
// "serpentine" (boustrophedon) write traversal and an inheritable
// per-block color table.
package picture4

import "github.com/adventcore/advent/internal/errs"

// blockState is the latch every skip64/skip16/skip8/brun16 block reads
// and writes: the most recently seen color table and its total_count.
// The original engine keeps this in file-scope C globals (color_table,
// DAT_00647848) reset to -1 at the top of every decodePicture4 call;
// here it is a field threaded by pointer through each block call instead
// of a package-level variable, but the inherit-across-blocks semantics
// (total_count == 0xFF reuses the previous block's table) are unchanged.
type blockState struct {
	colorTable []byte
	totalCount int
}

func newBlockState() *blockState {
	return &blockState{totalCount: -1}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// writePixel bounds-checks a write into the shared framebuffer slice.
func writePixel(pixels []byte, at int, v byte) error {
	if at < 0 || at >= len(pixels) {
		return errs.Newf(errs.OutOfBounds, "", int64(at), "block write outside framebuffer (len=%d)", len(pixels))
	}
	pixels[at] = v
	return nil
}


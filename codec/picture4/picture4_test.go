package picture4

import (
	"testing"

	"github.com/adventcore/advent/surface"
	"github.com/stretchr/testify/require"
)

// Scenario E: a single no-op block leaves the framebuffer untouched.
func TestDecodeNopGrid(t *testing.T) {
	buf := []byte{0x04, 0x02, 0x00, 0x02, 0x00, 0x02, 0x00, 0x02, 0x00, 0x00}
	dst := surface.New(2, 2)
	consumed, err := Decode(buf, dst)
	require.NoError(t, err)
	require.Equal(t, len(buf), consumed)
	for _, p := range dst.Pixels {
		require.Equal(t, byte(0), p)
	}
}

func TestDecodeRawCopyBlock(t *testing.T) {
	// 4x2 image, one 4x2 block, raw-copy code.
	buf := []byte{
		0x04, 0x04, 0x00, 0x02, 0x00, 0x04, 0x00, 0x02, 0x00,
		0x01,
		0x01, 0x02, 0x03, 0x04,
		0x08, 0x07, 0x06, 0x05,
	}
	dst := surface.New(4, 2)
	_, err := Decode(buf, dst)
	require.NoError(t, err)
	require.Equal(t, byte(0x01), dst.At(0, 0))
	require.Equal(t, byte(0x04), dst.At(3, 0))
	// Row 1 is written right-to-left starting at the far column.
	require.Equal(t, byte(0x08), dst.At(3, 1))
	require.Equal(t, byte(0x05), dst.At(0, 1))
}

func TestDecodeUnknownBlockCode(t *testing.T) {
	buf := []byte{0x04, 0x02, 0x00, 0x02, 0x00, 0x02, 0x00, 0x02, 0x00, 0x7f}
	dst := surface.New(2, 2)
	_, err := Decode(buf, dst)
	require.Error(t, err)
}

func TestDecodeNonTilingImageIsCorrupt(t *testing.T) {
	buf := []byte{0x04, 0x03, 0x00, 0x02, 0x00, 0x02, 0x00, 0x02, 0x00}
	dst := surface.New(3, 2)
	_, err := Decode(buf, dst)
	require.Error(t, err)
}

func TestDecodeSkip8SingleColor(t *testing.T) {
	// total_count=1 color table {0xAB}; command 0x08 -> idx0, count=1; terminator 0.
	buf := []byte{
		0x04, 0x02, 0x00, 0x02, 0x00, 0x02, 0x00, 0x02, 0x00,
		0x08,
		0x01, 0xAB,
		0x08, 0x00,
	}
	dst := surface.New(2, 2)
	_, err := Decode(buf, dst)
	require.NoError(t, err)
	require.Equal(t, byte(0xAB), dst.At(0, 0))
}

// TestDecodeBrun16PhaseFlip exercises a hi-run of odd nibble length (one
// indexed-color pixel), which flips the nibble phase once. The following
// command's hi/lo read must then come from the flipped phase — this is
// the case that previously mis-decoded when the hi nibble read ignored
// the live phase.
func TestDecodeBrun16PhaseFlip(t *testing.T) {
	buf := []byte{
		0x00, 0x02, 0x00, 0x02, 0x00, 0x02, 0x00, 0x02, 0x00, // header
		0x02,             // block type: brun16
		0x02, 0xAA, 0xBB, // total_count=2, color table {0xAA, 0xBB}
		0x10, // cmd1: hi=1 (one indexed-color pixel), lo=0
		0x10, // idx=1 (color 0xBB) for that pixel; low nibble 0 is cmd2's hi
		0x00, // high nibble 0 is cmd2's lo -> hi=0 && lo=0, block ends
	}
	dst := surface.New(2, 2)
	consumed, err := Decode(buf, dst)
	require.NoError(t, err)
	require.Equal(t, len(buf), consumed)
	require.Equal(t, byte(0xBB), dst.At(0, 0))
	require.Equal(t, byte(0), dst.At(1, 0))
	require.Equal(t, byte(0), dst.At(0, 1))
	require.Equal(t, byte(0), dst.At(1, 1))
}

// TestDecodeSkip64MultiRowWrap drives a single 2x2 block across its row
// wrap with two draw commands, filling every pixel and exercising the
// peek-then-defer command byte idiom across a direction flip.
func TestDecodeSkip64MultiRowWrap(t *testing.T) {
	buf := []byte{
		0x04, 0x02, 0x00, 0x02, 0x00, 0x02, 0x00, 0x02, 0x00, // header
		0x03,             // block type: skip64
		0x01, 0xCC,       // total_count=1, color table {0xCC}
		0xC0, 0x40, 0x00, // cmd(count=3,idx=0), cmd(count=1,idx=0), terminator
	}
	dst := surface.New(2, 2)
	consumed, err := Decode(buf, dst)
	require.NoError(t, err)
	require.Equal(t, len(buf), consumed)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			require.Equal(t, byte(0xCC), dst.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

// TestDecodeSkip16MultiRowWrap fills a 2x2 block with a single command
// whose count spans the row wrap in one shot.
func TestDecodeSkip16MultiRowWrap(t *testing.T) {
	buf := []byte{
		0x04, 0x02, 0x00, 0x02, 0x00, 0x02, 0x00, 0x02, 0x00, // header
		0x04,       // block type: skip16
		0x01, 0xDD, // total_count=1, color table {0xDD}
		0x40, 0x00, // cmd(count=4,idx=0), terminator
	}
	dst := surface.New(2, 2)
	consumed, err := Decode(buf, dst)
	require.NoError(t, err)
	require.Equal(t, len(buf), consumed)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			require.Equal(t, byte(0xDD), dst.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

// TestDecodeSkip8SingleColumnTail forces total_count (9) past the skip8
// table capacity (8), exercising the put_single_col tail path appended
// after the main command loop.
func TestDecodeSkip8SingleColumnTail(t *testing.T) {
	buf := []byte{
		0x04, 0x02, 0x00, 0x02, 0x00, 0x02, 0x00, 0x02, 0x00, // header
		0x08, // block type: skip8
		0x09, // total_count=9 -> one single-column tail block (9 > 8)
		0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, // 8-byte color table (unused by any command)
		0x00,       // main command loop terminates immediately
		0xEE, 0xEF, // single-column: color=0xEE, draw 1 pixel (0xEF - 0xEE = 1)
		0xFF, // single-column terminator
	}
	dst := surface.New(2, 2)
	consumed, err := Decode(buf, dst)
	require.NoError(t, err)
	require.Equal(t, len(buf), consumed)
	require.Equal(t, byte(0xEE), dst.At(0, 0))
	require.Equal(t, byte(0), dst.At(1, 0))
	require.Equal(t, byte(0), dst.At(0, 1))
	require.Equal(t, byte(0), dst.At(1, 1))
}

// TestDecodeSkip8ColorTableInheritance decodes two adjacent skip8 blocks;
// the second declares total_count=0xff and carries no table bytes of its
// own, so it must reuse the first block's color table rather than an
// empty one.
func TestDecodeSkip8ColorTableInheritance(t *testing.T) {
	buf := []byte{
		0x00, 0x04, 0x00, 0x02, 0x00, 0x02, 0x00, 0x02, 0x00, // header: 4x2 image, 2x2 blocks
		0x08,             // block 1 (x=0,y=0): skip8
		0x02, 0x55, 0x66, // total_count=2, color table {0x55, 0x66}
		0x20, 0x00, // cmd(count=4,idx=0) fills the block with 0x55, terminator
		0x08,       // block 2 (x=2,y=0): skip8
		0xff,       // total_count=0xff -> inherit {0x55, 0x66}
		0x21, 0x00, // cmd(count=4,idx=1) fills the block with inherited 0x66, terminator
	}
	dst := surface.New(4, 2)
	consumed, err := Decode(buf, dst)
	require.NoError(t, err)
	require.Equal(t, len(buf), consumed)
	require.Equal(t, byte(0x55), dst.At(0, 0))
	require.Equal(t, byte(0x55), dst.At(1, 0))
	require.Equal(t, byte(0x55), dst.At(0, 1))
	require.Equal(t, byte(0x55), dst.At(1, 1))
	require.Equal(t, byte(0x66), dst.At(2, 0))
	require.Equal(t, byte(0x66), dst.At(3, 0))
	require.Equal(t, byte(0x66), dst.At(2, 1))
	require.Equal(t, byte(0x66), dst.At(3, 1))
}

package picture4

import (
	"github.com/adventcore/advent/internal/errs"
	"github.com/adventcore/advent/surface"
	"github.com/rs/zerolog/log"
)

// Decode renders a picture4 block-coded stream into dst at (0,0), the
// only origin the original engine ever composites this format at.
// Blocks must tile the header's image width and height exactly (a
// non-tiling header is Corrupt); the color-table latch is
// reset fresh for every call, matching DAT_00647848 = -1 at the top of
// decodePicture4.
func Decode(buf []byte, dst *surface.Surface) (consumed int, err error) {
	if len(buf) < 9 {
		return 0, errs.Newf(errs.TruncatedInput, "picture4", 0, "header needs 9 bytes, have %d", len(buf))
	}

	imageWidth := int(buf[1]) | int(buf[2])<<8
	imageHeight := int(buf[3]) | int(buf[4])<<8
	blockWidth := int(buf[5]) | int(buf[6])<<8
	blockHeight := int(buf[7]) | int(buf[8])<<8

	if blockWidth <= 0 || blockHeight <= 0 {
		return 0, errs.Newf(errs.Corrupt, "picture4", 0, "non-positive block size %dx%d", blockWidth, blockHeight)
	}
	if imageWidth%blockWidth != 0 || imageHeight%blockHeight != 0 {
		return 0, errs.Newf(errs.Corrupt, "picture4", 0,
			"image %dx%d does not tile exactly into %dx%d blocks", imageWidth, imageHeight, blockWidth, blockHeight)
	}

	pos := 9
	st := newBlockState()
	// Serpentine traversal steps by dst.Pitch, the destination surface's
	// real row stride. The original engine steps by the header's
	// image_width instead, but every caller here allocates dst at exactly
	// imageWidth x imageHeight (FMV frames are always 640x480), so the
	// two coincide; a surface with a different pitch than imageWidth
	// would need this parameterized on imageWidth instead.
	pitch := dst.Pitch

	for y := 0; y < imageHeight; y += blockHeight {
		for x := 0; x < imageWidth; x += blockWidth {
			if pos >= len(buf) {
				return pos, errs.Newf(errs.TruncatedInput, "picture4", int64(pos), "stream ended before block (x=%d,y=%d)", x, y)
			}
			blockType := buf[pos]
			pos++

			to := y*pitch + x

			switch blockType {
			case 0x00:
				// nop: block left untouched

			case 0x01:
				pos, err = decodeCopy(buf, pos, dst.Pixels, to, pitch, blockWidth, blockHeight)

			case 0x02:
				pos, err = decodeBrun16(buf, pos, dst.Pixels, to, pitch, blockWidth, st)

			case 0x03:
				pos, err = decodeSkip64(buf, pos, dst.Pixels, to, pitch, blockWidth, st)

			case 0x04:
				pos, err = decodeSkip16(buf, pos, dst.Pixels, to, pitch, blockWidth, st)

			case 0x08:
				pos, err = decodeSkip8(buf, pos, dst.Pixels, to, pitch, blockWidth, st)

			default:
				return pos, errs.Newf(errs.UnknownOpcode, "picture4", int64(pos-1), "unknown block code 0x%02x at (x=%d,y=%d)", blockType, x, y)
			}

			if err != nil {
				return pos, err
			}
		}
	}

	log.Debug().Int("width", imageWidth).Int("height", imageHeight).
		Int("block_width", blockWidth).Int("block_height", blockHeight).Msg("decoded picture4")
	return pos, nil
}

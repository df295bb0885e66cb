// Package loader implements the two composited-picture resource types:
// backgrounds (a picture1 stream plus its palette) and animations (a
// table of picture1 frames overlaid on a base background at per-frame
// offsets).
package loader

import (
	"github.com/adventcore/advent/codec/palette"
	"github.com/adventcore/advent/codec/picture1"
	"github.com/adventcore/advent/internal/errs"
	"github.com/adventcore/advent/surface"
)

// Background is a decoded background resource: its rendered surface and
// the palette loaded alongside it.
type Background struct {
	Surface *surface.Surface
	Palette *palette.Palette
}

// DecodeBackground parses a type-0x06 resource. Its 20-byte header
// carries width/height/x/y fields the original engine reads but never
// applies when compositing — the picture1 stream is always rendered at
// (0,0) into a fresh 640x480 surface, a quirk preserved here rather than
// "corrected" to honor the header's x/y. Only bytes 0, 1, and 8 of the
// header are validated, matching the original (other header bytes go
// unchecked there too).
func DecodeBackground(data []byte, pal []byte) (*Background, error) {
	if len(data) < 20 {
		return nil, errs.Newf(errs.TruncatedInput, "background", 0, "header needs 20 bytes, have %d", len(data))
	}
	if data[0] != 0x10 || data[1] != 0x01 || data[8] != 0x01 {
		return nil, errs.Newf(errs.Corrupt, "background", 0,
			"invalid background header (got %02x %02x .. %02x at byte 8)", data[0], data[1], data[8])
	}

	decodedPalette, err := palette.DecodeStandalone(pal)
	if err != nil {
		return nil, errs.Wrapf(err, "decoding background palette")
	}

	surf := surface.New(640, 480)
	if _, err := picture1.Decode(data[20:], surf, 0, 0); err != nil {
		return nil, errs.Wrapf(err, "decoding background picture stream")
	}

	return &Background{Surface: surf, Palette: decodedPalette}, nil
}

// Package surface implements the paletted pixel buffer every decoder in
// this module writes into: an 8-bit index per pixel, row-major, with an
// independent pitch so scratch surfaces can differ from the 640x480
// framebuffer.
package surface

import "github.com/adventcore/advent/internal/errs"

// Surface is an 8-bit paletted raster.
type Surface struct {
	Width, Height int
	Pitch         int
	Pixels        []byte
}

// New allocates a zeroed surface of the given dimensions, pitch == width.
func New(width, height int) *Surface {
	return &Surface{
		Width:  width,
		Height: height,
		Pitch:  width,
		Pixels: make([]byte, width*height),
	}
}

// Row returns the mutable byte slice for scanline y, starting at column x.
func (s *Surface) Row(x, y int) ([]byte, error) {
	if y < 0 || y >= s.Height || x < 0 || x > s.Width {
		return nil, errs.Newf(errs.OutOfBounds, "", int64(y), "row (x=%d,y=%d) outside %dx%d surface", x, y, s.Width, s.Height)
	}
	start := y*s.Pitch + x
	return s.Pixels[start : y*s.Pitch+s.Width], nil
}

// At returns the pixel value at (x,y).
func (s *Surface) At(x, y int) byte {
	return s.Pixels[y*s.Pitch+x]
}

// Set writes a single pixel, bounds-checked.
func (s *Surface) Set(x, y int, v byte) error {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return errs.Newf(errs.OutOfBounds, "", int64(y*s.Pitch+x), "pixel (%d,%d) outside %dx%d surface", x, y, s.Width, s.Height)
	}
	s.Pixels[y*s.Pitch+x] = v
	return nil
}

// CopyFrom overwrites s's pixels with src's, which must match dimensions.
func (s *Surface) CopyFrom(src *Surface) error {
	if s.Width != src.Width || s.Height != src.Height {
		return errs.Newf(errs.Corrupt, "", 0, "surface size mismatch: %dx%d vs %dx%d", s.Width, s.Height, src.Width, src.Height)
	}
	copy(s.Pixels, src.Pixels)
	return nil
}

// NonZero counts pixels whose palette index is non-zero, used by the CLI
// to report decode statistics without exporting an image.
func (s *Surface) NonZero() int {
	n := 0
	for _, b := range s.Pixels {
		if b != 0 {
			n++
		}
	}
	return n
}

package loader

import (
	"github.com/adventcore/advent/codec/picture1"
	"github.com/adventcore/advent/internal/errs"
	"github.com/adventcore/advent/surface"
)

// AnimationFrame is one entry of an animation's frame table. Field order
// mirrors the original record layout: (x, y, size, w) — size precedes
// the width field, not the reverse.
type AnimationFrame struct {
	X, Y int
	Size int
	W    int
}

// Animation is a parsed type-0x07 (cursor) resource: its dimensions and
// per-frame table, with the picture1 payload bytes for each frame sliced
// out and ready to composite.
type Animation struct {
	Width, Height int
	Frames        []AnimationFrame
	payloads      [][]byte
}

// DecodeAnimation parses a type-0x07 resource. Header validation follows
// the original exactly: bytes 0,1,2,7 are checked; width/height live at
// bytes 3-6, frame count at bytes 8-9, and the frame table starts at
// byte 0x0c.
func DecodeAnimation(data []byte) (*Animation, error) {
	const tableStart = 0x0c
	const recordSize = 8

	if len(data) < tableStart {
		return nil, errs.Newf(errs.TruncatedInput, "animation", 0, "header needs %d bytes, have %d", tableStart, len(data))
	}
	if data[0] != 0x10 || data[1] != 0x01 || data[2] != 0x00 || data[7] != 0x08 {
		return nil, errs.Newf(errs.Corrupt, "animation", 0, "invalid animation header")
	}

	width := int(data[3]) | int(data[4])<<8
	height := int(data[5]) | int(data[6])<<8
	frameCount := int(data[8]) | int(data[9])<<8

	tableEnd := tableStart + recordSize*frameCount
	if len(data) < tableEnd {
		return nil, errs.Newf(errs.TruncatedInput, "animation", int64(len(data)),
			"frame table needs %d bytes, have %d", tableEnd, len(data))
	}

	anim := &Animation{Width: width, Height: height}
	frameOffset := tableEnd

	for i := 0; i < frameCount; i++ {
		rec := data[tableStart+i*recordSize : tableStart+(i+1)*recordSize]
		x := int(rec[0]) | int(rec[1])<<8
		y := int(rec[2]) | int(rec[3])<<8
		size := int(rec[4]) | int(rec[5])<<8
		w := int(rec[6]) | int(rec[7])<<8

		if frameOffset+size > len(data) {
			return nil, errs.Newf(errs.TruncatedInput, "animation", int64(frameOffset),
				"frame %d needs %d bytes, only %d remain", i, size, len(data)-frameOffset)
		}

		anim.Frames = append(anim.Frames, AnimationFrame{X: x, Y: y, Size: size, W: w})
		anim.payloads = append(anim.payloads, data[frameOffset:frameOffset+size])
		frameOffset += size
	}

	return anim, nil
}

// Composite renders frame i over a copy of base, returning the result.
// base must be a 640x480 surface, matching the original's fixed
// compositing canvas.
func (a *Animation) Composite(i int, base *surface.Surface) (*surface.Surface, error) {
	if i < 0 || i >= len(a.Frames) {
		return nil, errs.Newf(errs.OutOfBounds, "animation", int64(i), "frame index %d outside [0,%d)", i, len(a.Frames))
	}

	surf := surface.New(base.Width, base.Height)
	if err := surf.CopyFrom(base); err != nil {
		return nil, err
	}

	frame := a.Frames[i]
	if _, err := picture1.Decode(a.payloads[i], surf, frame.X, frame.Y); err != nil {
		return nil, errs.Wrapf(err, "compositing animation frame %d", i)
	}
	return surf, nil
}

// Package fmv drives the full-motion-video container: a 16-byte header,
// a sequence of frames, each a sequence of type-dispatched chunks
// (audio/palette/picture) that update a shared palette and framebuffer
// before being presented at roughly 10 frames per second.
package fmv

import (
	"time"

	"github.com/adventcore/advent/codec/palette"
	"github.com/adventcore/advent/codec/picture1"
	"github.com/adventcore/advent/codec/picture4"
	"github.com/adventcore/advent/internal/byteio"
	"github.com/adventcore/advent/internal/errs"
	"github.com/adventcore/advent/stats"
	"github.com/adventcore/advent/surface"
	"github.com/rs/zerolog/log"
)

const (
	chunkTypeAudio   = 0x0082
	chunkTypePalette = 0x0002
	chunkTypePicture = 0x0010

	maxChunkSize = 10_000_000
	frameDelay   = 100 * time.Millisecond // target 10 fps
)

// Presenter is the host collaborator the driver presents frames through.
// The real framebuffer blit, the pacing sleep, and the event pump all
// live outside this module; a test or scripted-inspection presenter can
// supply no-ops.
type Presenter interface {
	Present(surf *surface.Surface, pal *palette.Palette)
	Sleep(d time.Duration)
	PollQuit() bool
}

// Driver plays one FMV resource against a Presenter, accumulating
// PlaybackStats as it goes.
type Driver struct {
	Presenter Presenter
}

// NewDriver builds a Driver around the given Presenter.
func NewDriver(p Presenter) *Driver {
	return &Driver{Presenter: p}
}

// Play decodes and presents every frame of buf, returning once playback
// completes, the host asks to quit, or a chunk fails to decode.
func (d *Driver) Play(buf []byte) (stats.PlaybackStats, error) {
	var s stats.PlaybackStats
	r := byteio.NewReader(buf, "fmv")

	if _, err := r.ReadU16LE(); err != nil { // a0, unidentified
		return s, err
	}
	if _, err := r.ReadU16LE(); err != nil { // a1, unidentified
		return s, err
	}
	frameCount, err := r.ReadU16LE()
	if err != nil {
		return s, err
	}
	if _, err := r.ReadU16LE(); err != nil { // a3, unidentified
		return s, err
	}
	if err := r.Skip(8); err != nil { // reserved
		return s, err
	}

	framebuffer := surface.New(640, 480)
	var pal palette.Palette

	for frameIdx := uint16(0); frameIdx < frameCount; frameIdx++ {
		frameStart := s.Now()

		chunkCount, err := r.ReadU16LE()
		if err != nil {
			return s, err
		}

		for c := uint16(0); c < chunkCount; c++ {
			chunkSize, err := r.ReadU32LE()
			if err != nil {
				return s, err
			}
			chunkType, err := r.ReadU16LE()
			if err != nil {
				return s, err
			}
			if _, err := r.ReadU16LE(); err != nil { // reserved
				return s, err
			}

			if chunkSize == 0 {
				continue
			}
			if chunkSize >= maxChunkSize {
				return s, errs.Newf(errs.Corrupt, "fmv", r.Pos(), "chunk size %d exceeds sanity bound", chunkSize)
			}

			payload, err := r.ReadBytes(int(chunkSize))
			if err != nil {
				return s, err
			}

			s.RecordChunk(chunkType)

			switch chunkType {
			case chunkTypeAudio:
				// audio forwarding is a host concern; no-op here.

			case chunkTypePalette:
				if err := palette.DecodeChunk(&pal, payload); err != nil {
					return s, errs.Wrapf(err, "frame %d chunk %d: decoding palette", frameIdx, c)
				}

			case chunkTypePicture:
				if err := decodePicture(payload, framebuffer); err != nil {
					return s, errs.Wrapf(err, "frame %d chunk %d: decoding picture", frameIdx, c)
				}

			default:
				log.Warn().Uint16("chunk_type", chunkType).Msg("unknown FMV chunk type")
			}
		}

		d.Presenter.Present(framebuffer, &pal)
		s.RecordFrame(s.Since(frameStart))
		d.Presenter.Sleep(frameDelay)

		if d.Presenter.PollQuit() {
			break
		}
	}

	return s, nil
}

func decodePicture(buf []byte, framebuffer *surface.Surface) error {
	if len(buf) == 0 {
		return errs.Newf(errs.TruncatedInput, "fmv", 0, "empty picture chunk")
	}
	switch buf[0] {
	case 0x01, 0x02, 0x03:
		_, err := picture1.Decode(buf, framebuffer, 0, 0)
		return err
	case 0x04:
		_, err := picture4.Decode(buf, framebuffer)
		return err
	default:
		return errs.Newf(errs.UnknownOpcode, "fmv", 0, "unknown picture type 0x%02x", buf[0])
	}
}

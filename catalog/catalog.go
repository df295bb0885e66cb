// Package catalog is the top-level library facade: open the index and
// resource files, then load and decode individual resources through one
// entry point.
package catalog

import (
	"os"

	"github.com/adventcore/advent/codec/palette"
	"github.com/adventcore/advent/container/fmv"
	"github.com/adventcore/advent/internal/errs"
	"github.com/adventcore/advent/loader"
	"github.com/adventcore/advent/resource"
	"github.com/adventcore/advent/script"
	"github.com/adventcore/advent/stats"
	"github.com/adventcore/advent/surface"
	"github.com/rs/zerolog/log"
)

// Catalog pairs a parsed resource index with a loader over ADVENT.RES.
type Catalog struct {
	loader *resource.Loader
}

// Open parses idxPath and wires a FileSource at resPath, open-per-call
// exactly as the original engine loads resources.
func Open(idxPath, resPath string) (*Catalog, error) {
	raw, err := os.ReadFile(idxPath)
	if err != nil {
		return nil, errs.Wrapf(err, "reading %s", idxPath)
	}

	idx, err := resource.ParseIndex(raw)
	if err != nil {
		return nil, errs.Wrapf(err, "parsing %s", idxPath)
	}

	log.Info().Str("idx", idxPath).Str("res", resPath).Int("resources", idx.Len()).Msg("catalog opened")
	return &Catalog{loader: resource.NewLoader(idx, resource.FileSource{Path: resPath})}, nil
}

// PlayVideo decodes and drives an FMV resource through presenter,
// returning playback statistics once it finishes or the presenter asks
// to stop.
func (c *Catalog) PlayVideo(name string, presenter fmv.Presenter) (stats.PlaybackStats, error) {
	data, err := c.loader.Load(resource.Id{Type: resource.TypeVideo, Name: name})
	if err != nil {
		return stats.PlaybackStats{}, err
	}
	return fmv.NewDriver(presenter).Play(data)
}

// LoadBackground decodes a background resource (its palette resource is
// loaded alongside it internally) and returns the rendered surface.
func (c *Catalog) LoadBackground(name string) (*surface.Surface, error) {
	bg, err := c.loadBackgroundFull(name)
	if err != nil {
		return nil, err
	}
	return bg.Surface, nil
}

// LoadBackgroundPalette returns only the palette half of a background
// resource, for callers that want the colors without the surface. The
// picture stream is still decoded; only its surface is discarded.
func (c *Catalog) LoadBackgroundPalette(name string) (*palette.Palette, error) {
	bg, err := c.loadBackgroundFull(name)
	if err != nil {
		return nil, err
	}
	return bg.Palette, nil
}

func (c *Catalog) loadBackgroundFull(name string) (*loader.Background, error) {
	data, err := c.loader.Load(resource.Id{Type: resource.TypeBackground, Name: name})
	if err != nil {
		return nil, err
	}
	pal, err := c.loader.Load(resource.Id{Type: resource.TypePalette, Name: name})
	if err != nil {
		return nil, err
	}
	return loader.DecodeBackground(data, pal)
}

// LoadAnimation decodes a type-0x07 (cursor) resource's frame table,
// without compositing any frame yet.
func (c *Catalog) LoadAnimation(name string) (*loader.Animation, error) {
	data, err := c.loader.Load(resource.Id{Type: resource.TypeAnimation, Name: name})
	if err != nil {
		return nil, err
	}
	return loader.DecodeAnimation(data)
}

// LoadPalette decodes a standalone type-0x03 palette resource.
func (c *Catalog) LoadPalette(name string) (*palette.Palette, error) {
	data, err := c.loader.Load(resource.Id{Type: resource.TypePalette, Name: name})
	if err != nil {
		return nil, err
	}
	return palette.DecodeStandalone(data)
}

// LoadScript loads and disassembles a script resource.
func (c *Catalog) LoadScript(name string) (*script.Listing, error) {
	data, err := c.loader.Load(resource.Id{Type: resource.TypeScript, Name: name})
	if err != nil {
		return nil, err
	}
	return script.Parse(data, name)
}

// Index exposes the parsed resource table for diagnostic listing.
func (c *Catalog) Index() *resource.Index {
	return c.loader.Index
}

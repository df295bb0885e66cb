package cmd

import (
	"fmt"
	"time"

	"github.com/adventcore/advent/catalog"
	"github.com/adventcore/advent/codec/palette"
	"github.com/adventcore/advent/surface"
	"github.com/spf13/cobra"
)

// cliPresenter drives playback for scripted inspection: it never renders
// to a screen and never asks to quit early. Its pacing sleep is
// configurable via --frame-delay, defaulting to 0 so automated runs don't
// pay the original's ~10fps pacing.
type cliPresenter struct {
	delay time.Duration
}

func (p *cliPresenter) Present(surf *surface.Surface, pal *palette.Palette) {}

func (p *cliPresenter) Sleep(d time.Duration) {
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
}

func (p *cliPresenter) PollQuit() bool { return false }

var videoCmd = &cobra.Command{
	Use:   "video <idx-path> <res-path> <name>",
	Short: "Drive an FMV resource through a no-op presenter and print playback stats.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Open(args[0], args[1])
		if err != nil {
			return err
		}

		stats, err := cat.PlayVideo(args[2], &cliPresenter{delay: frameDelay})
		if err != nil {
			return err
		}

		fmt.Println(stats.String())
		return nil
	},
}

func init() {
	videoCmd.Flags().DurationVar(&frameDelay, "frame-delay", 0, "pacing sleep between presented frames")
}

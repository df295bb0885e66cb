package cmd

import (
	"fmt"

	"github.com/adventcore/advent/catalog"
	"github.com/spf13/cobra"
)

var backgroundCmd = &cobra.Command{
	Use:   "background <idx-path> <res-path> <name>",
	Short: "Decode a background resource and print surface statistics.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Open(args[0], args[1])
		if err != nil {
			return err
		}

		surf, err := cat.LoadBackground(args[2])
		if err != nil {
			return err
		}

		fmt.Printf("width=%d height=%d non_zero_pixels=%d\n", surf.Width, surf.Height, surf.NonZero())
		return nil
	},
}

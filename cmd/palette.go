package cmd

import (
	"fmt"

	"github.com/adventcore/advent/catalog"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var paletteCmd = &cobra.Command{
	Use:   "palette <idx-path> <res-path> <name>",
	Short: "Decode a standalone palette resource and print its RGB table.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Open(args[0], args[1])
		if err != nil {
			return err
		}

		pal, err := cat.LoadPalette(args[2])
		if err != nil {
			return err
		}

		if outFormat == "json" {
			out, err := jsoniter.MarshalIndent(pal, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		for i, c := range pal {
			fmt.Printf("%3d: #%02x%02x%02x\n", i, c[0], c[1], c[2])
		}
		return nil
	},
}

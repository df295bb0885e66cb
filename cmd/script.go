package cmd

import (
	"fmt"

	"github.com/adventcore/advent/catalog"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var scriptCmd = &cobra.Command{
	Use:   "script <idx-path> <res-path> <name>",
	Short: "Load and disassemble a script resource.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Open(args[0], args[1])
		if err != nil {
			return err
		}

		listing, err := cat.LoadScript(args[2])
		if err != nil {
			return err
		}

		if outFormat == "json" {
			out, err := jsoniter.MarshalIndent(listing, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		for _, sl := range listing.Scripts {
			fmt.Printf("-- script %d --\n", sl.Index)
			for _, line := range sl.Lines {
				fmt.Println(line)
			}
		}
		if len(listing.MissingOpcodes) > 0 {
			fmt.Printf("missing opcodes: %v\n", listing.MissingOpcodes)
		}
		return nil
	},
}

package cmd

import (
	"fmt"
	"os"

	"github.com/adventcore/advent/resource"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

type indexRow struct {
	Type   uint32 `json:"type"`
	Name   string `json:"name"`
	Offset uint32 `json:"offset"`
	Length uint32 `json:"length"`
}

var indexCmd = &cobra.Command{
	Use:   "index <idx-path>",
	Short: "Parse an ADVENT.IDX resource index and print its table.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		idx, err := resource.ParseIndex(raw)
		if err != nil {
			return err
		}
		rows := make([]indexRow, 0, idx.Len())
		for _, id := range idx.Ids() {
			entry, _ := idx.Lookup(id)
			rows = append(rows, indexRow{
				Type:   uint32(id.Type),
				Name:   id.Name,
				Offset: entry.Offset,
				Length: entry.Length,
			})
		}

		if outFormat == "json" {
			out, err := jsoniter.MarshalIndent(rows, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		for _, row := range rows {
			fmt.Printf("type=0x%02x name=%-16s offset=%-10d length=%d\n", row.Type, row.Name, row.Offset, row.Length)
		}
		return nil
	},
}

/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"io"

	"contenttype/overrides"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// overridesCmd represents the overrides command
var overridesCmd = &cobra.Command{
	Use:   "overrides",
	Short: "List the extensions whose MIME type is never sniffed.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listOverrides(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(overridesCmd)
}

func listOverrides(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Extension", "MIME"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, e := range overrides.Entries() {
		table.Append([]string{"." + e.Extension, e.MIME})
	}
	table.Render()
}

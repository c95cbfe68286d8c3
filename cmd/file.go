/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// fileCmd represents the file command
var fileCmd = &cobra.Command{
	Use:   "file PATH...",
	Short: "Print the MIME type of local files.",
	Long: `Print the MIME type of each local file as "path: type".

Files whose extension is a known Office format are reported from the
extension alone. Everything else is sniffed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClassifier(nil)
		if err != nil {
			return err
		}
		return classifyPaths(cmd.OutOrStdout(), c, nil, args)
	},
}

func init() {
	rootCmd.AddCommand(fileCmd)
}

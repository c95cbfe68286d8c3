/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// bufferCmd represents the buffer command
var bufferCmd = &cobra.Command{
	Use:   "buffer [FILE|-]",
	Short: "Print the MIME type of raw bytes read from stdin or a file.",
	Long: `Read stdin, or FILE, to the end and print the MIME type of its content.

The name of FILE is never used, so Office extensions are not taken into
account.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		c, err := newClassifier(nil)
		if err != nil {
			return err
		}
		mt, err := c.Buffer(data)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), mt)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bufferCmd)
}

func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(args[0])
}

/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"contenttype/bars"
	nnconnect "contenttype/hdfs"
	"contenttype/randomfiles"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v7"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate DIR...",
	Short: "Write a random directory tree of sample files.",
	Long: `Write a random directory tree structure into each DIR, populated
with files whose content type is known: PDF, PNG, GIF, gzip, plain text,
Office documents and random bytes.

With --hdfs, the tree is written into HDFS.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args)
	},
}

var (
	opts         randomfiles.Options
	generateHdfs bool
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Int32VarP(&opts.FileSize, "filesize", "s", 4096, "Bytes of random data written into each file")
	generateCmd.Flags().Int32VarP(&opts.Depth, "depth", "d", 3, "How deep you want the directory tree")
	generateCmd.Flags().Int32VarP(&opts.Width, "width", "w", 2, "The number of subdirectories per directory")
	generateCmd.Flags().Int32VarP(&opts.Files, "files", "f", 15, "The number of files per directory")
	generateCmd.Flags().BoolVar(&generateHdfs, "hdfs", false, "Write the tree into HDFS")
	generateCmd.Flags().SortFlags = false
}

func runGenerate(cmd *cobra.Command, roots []string) error {
	var fsys randomfiles.FS
	if generateHdfs {
		client, err := nnconnect.ConnectToNamenode(cfg.HDFS)
		if err != nil {
			return err
		}
		defer client.Close()
		fsys = randomfiles.HDFS(client)
	} else {
		fsys = randomfiles.Afero(afero.NewOsFs())
	}

	p := mpb.NewWithContext(cmd.Context(), mpb.WithOutput(cmd.ErrOrStderr()))
	defer p.Wait()

	for _, root := range roots {
		bar := bars.AddSpinner(p, root)
		if err := fsys.MkdirAll(root, 0755); err != nil {
			bar.Abort(false)
			return fmt.Errorf("error creating directory %s: %w", root, err)
		}

		o := opts
		o.OnFile = func(string, randomfiles.Kind) { bar.Increment() }
		if err := randomfiles.WriteRandomFiles(fsys, root, 1, &o); err != nil {
			bar.Abort(false)
			return err
		}
		bar.SetTotal(-1, true)
	}
	return nil
}

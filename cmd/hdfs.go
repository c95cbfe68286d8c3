/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	nnconnect "contenttype/hdfs"
	"contenttype/source"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// hdfsCmd represents the hdfs command
var hdfsCmd = &cobra.Command{
	Use:   "hdfs PATH...",
	Short: "Print the MIME type of files stored in HDFS.",
	Long: `Print the MIME type of each HDFS file as "path: type".

The namenode is taken from the hadoop configuration found through
HADOOP_HOME or HADOOP_CONF_DIR, unless --namenode is given. Only the
leading bytes of each file are read.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHdfs(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(hdfsCmd)

	// Shared with scan --hdfs and generate --hdfs.
	rootCmd.PersistentFlags().String("namenode", "", "HDFS namenode address, host:port")
	rootCmd.PersistentFlags().Bool("kerberos", false, "Authenticate to HDFS with kerberos")
	viper.BindPFlag("hdfs.namenode", rootCmd.PersistentFlags().Lookup("namenode"))
	viper.BindPFlag("hdfs.kerberos", rootCmd.PersistentFlags().Lookup("kerberos"))
}

func runHdfs(cmd *cobra.Command, paths []string) error {
	client, err := nnconnect.ConnectToNamenode(cfg.HDFS)
	if err != nil {
		return err
	}
	defer client.Close()

	c, err := newClassifier(nil)
	if err != nil {
		return err
	}
	return classifyPaths(cmd.OutOrStdout(), c, source.NewHDFS(client), paths)
}

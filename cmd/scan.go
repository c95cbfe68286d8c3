/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"time"

	"contenttype/bars"
	nnconnect "contenttype/hdfs"
	"contenttype/metrics"
	"contenttype/report"
	"contenttype/scan"
	"contenttype/source"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vbauerster/mpb/v7"
)

var (
	scanOutput      string
	scanMetricsFile string
	scanNoProgress  bool
	scanHdfs        bool
	scanNoSummary   bool
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan DIR",
	Short: "Classify every file under a directory.",
	Long: `Walk DIR and classify every regular file it contains using a pool of
workers. A summary by MIME type is printed when the scan completes, and the
per-file results can be written as JSON lines.

With --hdfs, DIR is a path in HDFS.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().IntP("workers", "w", 4, "Number of files classified concurrently")
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "Write per-file records as JSON lines (gzip if the name ends in .gz)")
	scanCmd.Flags().StringVar(&scanMetricsFile, "metrics-file", "", "Write Prometheus metrics in textfile format")
	scanCmd.Flags().BoolVar(&scanNoProgress, "no-progress", false, "Do not show a progress bar")
	scanCmd.Flags().BoolVar(&scanHdfs, "hdfs", false, "DIR is an HDFS path")
	scanCmd.Flags().BoolVar(&scanNoSummary, "no-summary", false, "Do not print the summary table")
	viper.BindPFlag("scan.workers", scanCmd.Flags().Lookup("workers"))
	scanCmd.Flags().SortFlags = false
}

func runScan(cmd *cobra.Command, root string) error {
	start := time.Now()
	m := metrics.New()
	c, err := newClassifier(m)
	if err != nil {
		return err
	}

	s := &scan.Scanner{
		Classifier: c,
		Workers:    cfg.Scan.Workers,
		Log:        log,
	}
	if scanHdfs {
		client, err := nnconnect.ConnectToNamenode(cfg.HDFS)
		if err != nil {
			return err
		}
		defer client.Close()
		s.Source = source.NewHDFS(client)
	}

	files, err := s.List(root)
	if err != nil {
		return fmt.Errorf("listing %s: %w", root, err)
	}

	var p *mpb.Progress
	if !scanNoProgress && len(files) > 0 {
		p = mpb.NewWithContext(cmd.Context(), mpb.WithOutput(cmd.ErrOrStderr()))
		bar := bars.AddCountBar(p, "Classifying", int64(len(files)))
		s.OnRecord = func(scan.Record) { bar.Increment() }
	}
	records := s.Classify(cmd.Context(), files)
	if p != nil {
		p.Wait()
	}

	if scanOutput != "" {
		if err := report.WriteFile(scanOutput, records); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	if scanMetricsFile != "" {
		if err := m.WriteTextfile(scanMetricsFile); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	if !scanNoSummary {
		report.Table(cmd.OutOrStdout(), records)
	}

	failed := report.Failed(records)
	log.WithFields(logrus.Fields{
		"files":    len(records),
		"failed":   failed,
		"duration": time.Since(start).Round(time.Millisecond),
	}).Info("scan complete")
	if err := cmd.Context().Err(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be classified", failed, len(records))
	}
	return nil
}

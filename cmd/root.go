/*
Copyright © 2022 Liam Gallear

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"contenttype/classify"
	"contenttype/config"
	"contenttype/header"
	"contenttype/logging"
	"contenttype/metrics"
	"contenttype/sniff"
	"contenttype/source"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
	log     = logrus.StandardLogger()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "contenttype",
	Short: "Contenttype reports the MIME type of files",
	Long: `Report the MIME type of local files, byte streams, HDFS files and
remote objects.

Office documents are recognised by their extension. Everything else is
identified from its leading bytes.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.contenttype.yaml)")
	rootCmd.PersistentFlags().String("backend", sniff.Mimetype, "signature engine to use")
	rootCmd.PersistentFlags().String("log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().Uint32("read-limit", header.DefaultLimit, "bytes read from each file for sniffing")
	viper.BindPFlag("sniffer.backend", rootCmd.PersistentFlags().Lookup("backend"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("sniffer.read_limit", rootCmd.PersistentFlags().Lookup("read-limit"))

	rootCmd.Version = "0.1.0"
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".contenttype" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".contenttype")
	}

	config.BindEnv(viper.GetViper())

	// If a config file is found, read it in.
	readErr := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if readErr != nil && !errors.As(readErr, &notFound) {
		cobra.CheckErr(readErr)
	}

	c, err := config.Load(viper.GetViper())
	cobra.CheckErr(err)
	cfg = c

	logging.Setup(cfg.Log, log)
	header.SetLimit(cfg.Sniffer.ReadLimit)
	if readErr == nil {
		log.WithField("file", viper.ConfigFileUsed()).Debug("using config file")
	}
}

func newClassifier(m *metrics.Metrics) (*classify.Classifier, error) {
	s, err := sniff.New(cfg.Sniffer.Backend)
	if err != nil {
		return nil, err
	}
	return classify.New(s, classify.WithLogger(log), classify.WithMetrics(m)), nil
}

// classifyPaths prints "path: mime" for every path it can classify. src is
// nil for the local filesystem.
func classifyPaths(out io.Writer, c *classify.Classifier, src source.Source, paths []string) error {
	var failed int
	for _, p := range paths {
		mt, err := classifyPath(c, src, p)
		if err != nil {
			log.WithField("path", p).WithError(err).Error("unable to classify")
			failed++
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", p, mt)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be classified", failed, len(paths))
	}
	return nil
}

func classifyPath(c *classify.Classifier, src source.Source, p string) (string, error) {
	var (
		o   *classify.Classification
		err error
	)
	if src == nil {
		o, err = c.Path(p)
	} else {
		o, err = c.Source(src, p)
	}
	if err != nil {
		return "", err
	}
	return o.ContentType()
}

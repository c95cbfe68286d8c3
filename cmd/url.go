/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"contenttype/classify"
	"contenttype/source"

	"github.com/spf13/cobra"
)

var urlTimeout time.Duration

// urlCmd represents the url command
var urlCmd = &cobra.Command{
	Use:   "url URL...",
	Short: "Print the MIME type of remote objects.",
	Long: `Print the MIME type of each http or https object as "url: type".

The object must answer HEAD. Only the leading bytes are fetched, with a
Range request. Query strings are not sent.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClassifier(nil)
		if err != nil {
			return err
		}
		client := &http.Client{Timeout: urlTimeout}

		var failed int
		for _, raw := range args {
			mt, err := classifyURL(c, client, raw)
			if err != nil {
				log.WithField("url", raw).WithError(err).Error("unable to classify")
				failed++
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", raw, mt)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d objects could not be classified", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(urlCmd)

	urlCmd.Flags().DurationVar(&urlTimeout, "timeout", 30*time.Second, "Timeout for each request")
}

func classifyURL(c *classify.Classifier, client *http.Client, raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	base := &url.URL{Scheme: u.Scheme, Host: u.Host, User: u.User, Path: "/"}
	src, err := source.NewHTTP(client, base.String())
	if err != nil {
		return "", err
	}
	return classifyPath(c, src, u.Path)
}

// Command bytestr is a line filter over the bytestr package: it trims,
// case-folds, parses and tokenizes text read from files or from
// standard input.
package main

import (
	"fmt"
	"os"

	"bytestr"
	"bytestr/cmd/bytestr/cli"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "bytestr",
		Short: "Trim, case-fold, parse and tokenize byte strings",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetOutput(os.Stderr)
			verbose, _ := cmd.Flags().GetBool("verbose")
			traceScans, _ := cmd.Flags().GetBool("trace")
			if verbose || traceScans {
				logrus.SetLevel(logrus.DebugLevel)
			}
			if traceScans {
				bytestr.SetTrace(func(op string, start, end int) {
					logrus.Debugf("%s located a token at bytes %d-%d", op, start, end)
				})
			}
		},
	}

	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("trace", false, "log the bounds of every scanned token (implies --verbose)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(
		cli.NewTrimCommand(),
		cli.NewUpperCommand(),
		cli.NewLowerCommand(),
		cli.NewParseCommand(),
		cli.NewTokensCommand(),
		versionCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

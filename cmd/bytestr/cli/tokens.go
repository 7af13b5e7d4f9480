package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"bytestr"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewTokensCommand returns the "tokens" command, which extracts every
// numeric token from the input and prints one value per line.
func NewTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file...]",
		Short: "Extract every numeric token from the input",
		Long: "Scans each line for numeric tokens and prints one value per line.\n" +
			"Malformed tokens are logged and skipped. Multiple files are tokenized\n" +
			"concurrently; their results still print in argument order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			asInt, _ := cmd.Flags().GetBool("int")
			if len(args) == 0 {
				out := bufio.NewWriter(os.Stdout)
				defer out.Flush()
				return scanLines(os.Stdin, "stdin", lineTokenizer(asInt, out))
			}
			results := make([]*bytes.Buffer, len(args))
			g, gctx := errgroup.WithContext(cmd.Context())
			for i, path := range args {
				g.Go(func() error {
					var buf bytes.Buffer
					if err := tokenizeFile(gctx, path, asInt, &buf); err != nil {
						return err
					}
					results[i] = &buf
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			for _, buf := range results {
				if _, err := buf.WriteTo(os.Stdout); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("int", false, "extract integer tokens instead of decimal ones")
	return cmd
}

func tokenizeFile(ctx context.Context, path string, asInt bool, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	fn := lineTokenizer(asInt, out)
	var lineno int
	for sc.Scan() {
		// stop early once a sibling file has failed
		if err := ctx.Err(); err != nil {
			return err
		}
		lineno++
		if err := fn(path, lineno, sc.Bytes()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// lineTokenizer returns a line callback that writes every numeric
// token of the line to out, one value per line.
func lineTokenizer(asInt bool, out io.Writer) func(name string, lineno int, line []byte) error {
	return func(name string, lineno int, line []byte) error {
		b := bytestr.NewBuffer(line)
		for {
			if asInt {
				n, err := b.NextInt()
				if err != nil {
					if stop, herr := stopOrSkip(err, name, lineno); stop {
						return herr
					}
					continue
				}
				fmt.Fprintln(out, n)
				continue
			}
			f, err := b.NextFloat()
			if err != nil {
				if stop, herr := stopOrSkip(err, name, lineno); stop {
					return herr
				}
				continue
			}
			fmt.Fprintln(out, f)
		}
	}
}

// stopOrSkip classifies a Next* failure. Running out of tokens ends
// the line normally; a malformed token is logged and skipped, since
// the scan has already moved the cursor past it; anything else is a
// hard error.
func stopOrSkip(err error, name string, lineno int) (stop bool, hard error) {
	var ferr *bytestr.FormatError
	if !errors.As(err, &ferr) {
		return true, err
	}
	if ferr.Reason == "no number" {
		return true, nil
	}
	logrus.Warnf("%s:%d: skipping malformed token: %v", name, lineno, err)
	return false, nil
}

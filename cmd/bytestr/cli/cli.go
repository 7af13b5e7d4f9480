// Package cli implements the bytestr subcommands. Each one reads the
// files named on the command line, or standard input when none are
// given, and writes its results to standard output one line at a time.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// forEachLine applies fn to every line of every named input, in order.
// An empty paths slice stands for standard input. The line passed to
// fn excludes the newline and is only valid until fn returns.
func forEachLine(paths []string, fn func(name string, lineno int, line []byte) error) error {
	if len(paths) == 0 {
		return scanLines(os.Stdin, "stdin", fn)
	}
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		err = scanLines(f, path, fn)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func scanLines(r io.Reader, name string, fn func(name string, lineno int, line []byte) error) error {
	logrus.Debugf("processing %s", name)
	sc := bufio.NewScanner(r)
	var lineno int
	for sc.Scan() {
		lineno++
		if err := fn(name, lineno, sc.Bytes()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}

package cli

import (
	"bufio"
	"os"

	"bytestr"

	"github.com/spf13/cobra"
)

// NewTrimCommand returns the "trim" command, which strips leading and
// trailing spaces and tabs from each input line.
func NewTrimCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trim [file...]",
		Short: "Strip leading and trailing spaces and tabs from each line",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()
			return forEachLine(args, func(_ string, _ int, line []byte) error {
				v := bytestr.Wrap(line).Trim()
				if _, err := v.WriteTo(out); err != nil {
					return err
				}
				return out.WriteByte('\n')
			})
		},
	}
}

// NewUpperCommand returns the "upper" command, which uppercases every
// ASCII letter on each input line.
func NewUpperCommand() *cobra.Command {
	return newCaseCmd("upper", "Uppercase every ASCII letter on each line", bytestr.View.ToUpper)
}

// NewLowerCommand returns the "lower" command, which lowercases every
// ASCII letter on each input line.
func NewLowerCommand() *cobra.Command {
	return newCaseCmd("lower", "Lowercase every ASCII letter on each line", bytestr.View.ToLower)
}

func newCaseCmd(use, short string, fold func(bytestr.View)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [file...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()
			return forEachLine(args, func(_ string, _ int, line []byte) error {
				fold(bytestr.Wrap(line))
				if _, err := out.Write(line); err != nil {
					return err
				}
				return out.WriteByte('\n')
			})
		},
	}
}

package cli

import (
	"fmt"

	"bytestr"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewParseCommand returns the "parse" command, which parses each input
// line, less surrounding whitespace, as one number.
func NewParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file...]",
		Short: "Parse each line as a single number",
		Long: "Parses every input line, less surrounding whitespace, as one number\n" +
			"and prints its value. Lines that do not parse are logged and skipped;\n" +
			"the command fails if any line was skipped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			asFloat, _ := cmd.Flags().GetBool("float")
			var lines, failed int
			err := forEachLine(args, func(name string, lineno int, line []byte) error {
				lines++
				v := bytestr.Wrap(line).Trim()
				var (
					val any
					err error
				)
				if asFloat {
					val, err = v.ParseFloat()
				} else {
					val, err = v.ParseInt()
				}
				if err != nil {
					failed++
					logrus.Warnf("%s:%d: %v", name, lineno, err)
					return nil
				}
				fmt.Println(val)
				return nil
			})
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d lines failed to parse", failed, lines)
			}
			return nil
		},
	}
	cmd.Flags().Bool("float", false, "parse decimal numbers instead of integers")
	return cmd
}

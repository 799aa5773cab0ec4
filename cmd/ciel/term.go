package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/6112/ciel/lang"
	"github.com/6112/ciel/scanner"
)

var classColors = map[string]*color.Color{
	lang.ClassKeyword: color.New(color.FgBlue, color.Bold),
	lang.ClassValue:   color.New(color.FgMagenta),
	lang.ClassBuiltin: color.New(color.FgCyan),
	lang.ClassString:  color.New(color.FgGreen),
	lang.ClassComment: color.New(color.FgHiBlack),
	lang.ClassRegexp:  color.New(color.FgRed),
}

func termCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "term [<file>]",
		Short: "render input ANSI-colored for the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, fileName, e := readInput(args)
			if e != nil {
				return e
			}

			reg, e := buildRegistry()
			if e != nil {
				return e
			}

			rules := resolveRules(reg, fileName)
			if rules == nil {
				cmd.Print(string(content))
				return nil
			}

			out := cmd.OutOrStdout()
			for _, sp := range scanner.Scan(string(content), rules) {
				c := classColors[sp.Class]
				if c == nil {
					if _, e = out.Write([]byte(sp.Text)); e != nil {
						return e
					}
					continue
				}
				if _, e = c.Fprint(out, sp.Text); e != nil {
					return e
				}
			}
			return nil
		},
	}
}

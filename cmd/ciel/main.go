/*
ciel is a console utility highlighting source code. Usage is

	ciel html [-l <lang>] [-o <name>] [--numbers] [<file>]
	ciel term [-l <lang>] [<file>]
	ciel langs

html renders the input as HTML with <span class="..."> markers,
term renders it ANSI-colored for the terminal,
langs lists the known language names.

<file> is the input file, standard input when omitted or "-".
The language is guessed from the file suffix unless -l is given;
an unknown language is not an error, the input passes through unchanged.
Extra language definitions are loaded as YAML files with --lang-dir.
*/
package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/6112/ciel/lang"
	"github.com/6112/ciel/registry"
	"github.com/6112/ciel/rule"
)

var log = logrus.New()

var (
	langName string
	langDir  string
)

func main() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	root := &cobra.Command{
		Use:           "ciel",
		Short:         "best-effort syntax highlighter",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&langName, "lang", "l", "", "language name, default is guessed from the file suffix")
	root.PersistentFlags().StringVar(&langDir, "lang-dir", "", "directory with extra YAML language definitions")
	root.AddCommand(htmlCommand(), termCommand(), langsCommand())

	if e := root.Execute(); e != nil {
		log.Error(e.Error())
		os.Exit(1)
	}
}

func langsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "list known language names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, e := buildRegistry()
			if e != nil {
				return e
			}
			for _, name := range reg.Names() {
				cmd.Println(name)
			}
			return nil
		},
	}
}

// buildRegistry compiles the builtin definitions plus any definitions
// found in --lang-dir into a fresh registry.
func buildRegistry() (*registry.Registry, error) {
	reg := registry.New()
	if e := reg.RegisterAll(lang.Builtin()); e != nil {
		return nil, e
	}

	if langDir != "" {
		specs, e := lang.LoadDir(langDir)
		if e != nil {
			return nil, e
		}
		if e = reg.RegisterAll(specs); e != nil {
			return nil, e
		}
	}
	return reg, nil
}

// resolveRules picks the language for fileName (the -l flag wins over
// the file suffix) and resolves its rules. A missing or unknown
// language yields nil rules and a warning: highlighting is skipped,
// never failed.
func resolveRules(reg *registry.Registry, fileName string) []rule.Rule {
	name := langName
	if name == "" {
		name = lang.ByExtension(fileName)
		if name == "" {
			log.Warnf("cannot guess language for %q, passing input through", fileName)
			return nil
		}
	}

	rules, found := reg.Resolve(name)
	if !found {
		log.Warnf("no such language: %q, passing input through", name)
		return nil
	}
	return rules
}

// readInput reads the single optional file argument, "-" or no
// argument meaning standard input.
func readInput(args []string) (content []byte, fileName string, e error) {
	if len(args) == 0 || args[0] == "-" {
		content, e = io.ReadAll(os.Stdin)
		return content, "", e
	}
	content, e = os.ReadFile(args[0])
	return content, args[0], e
}

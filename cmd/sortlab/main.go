// Command sortlab benchmarks the sortlab algorithms and writes one result
// file per scenario.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/convox/logger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// options shared by every subcommand
type globalOptions struct {
	configFile string
	quiet      bool
	noColor    bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globalOptions{}
	root := &cobra.Command{
		Use:           "sortlab",
		Short:         "Time sorting algorithms across input scenarios and sample sizes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if g.noColor {
				color.NoColor = true
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&g.configFile, "config", "c", "", "YAML configuration file")
	pf.BoolVarP(&g.quiet, "quiet", "q", false, "disable log output")
	pf.BoolVar(&g.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(newRunCmd(g), newListCmd(), newVerifyCmd(g))
	return root
}

// newLogger returns the CLI logger writing to the command's error stream
func newLogger(cmd *cobra.Command, g *globalOptions) *logger.Logger {
	if g.quiet {
		return logger.NewWriter("ns=sortlab", io.Discard)
	}
	return logger.NewWriter("ns=sortlab", cmd.ErrOrStderr())
}

// fail logs err and prints it in red on the error stream
func fail(cmd *cobra.Command, log *logger.Logger, err error) error {
	log.Error(err)
	fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("error: %v", err))
	return err
}

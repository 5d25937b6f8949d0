package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/lanrat/sortlab"
	"github.com/spf13/cobra"
)

func newVerifyCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every algorithm against the verification probes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd, g).At("verify")
			c, err := loadConfig(g.configFile, cmd.Flags())
			if err != nil {
				return fail(cmd, log, err)
			}
			algs, err := sortlab.DefaultRegistry[int64](c.RadixBase).Select(c.Algorithms...)
			if err != nil {
				return fail(cmd, log, err)
			}
			probes := sortlab.DefaultProbes[int64](c.Seed)
			if err := sortlab.Verify(cmd.Context(), algs, sortlab.OrderedLess[int64](), probes); err != nil {
				return fail(cmd, log, err)
			}
			log.Successf("algorithms=%d probes=%d", algs.Len(), len(probes))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d algorithms passed %d probes\n", color.GreenString("ok"), algs.Len(), len(probes))
			return nil
		},
	}
	fs := cmd.Flags()
	fs.Int("radix-base", 0, "digit base for radix sort")
	fs.Uint64("seed", 0, "seed for the random probe")
	fs.StringSlice("algorithms", nil, "algorithms to verify (default all)")
	return cmd
}

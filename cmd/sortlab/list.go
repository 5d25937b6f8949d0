package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/lanrat/sortlab"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available scenarios and algorithms in run order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printList(cmd.OutOrStdout())
			return nil
		},
	}
}

func printList(w io.Writer) {
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintln(w, bold("scenarios"))
	for _, s := range sortlab.DefaultScenarios[int64]() {
		fmt.Fprintf(w, "  %s\n", s.Name)
	}

	fmt.Fprintln(w, bold("algorithms"))
	for _, e := range sortlab.DefaultRegistry[int64](sortlab.DefaultRadixBase).Entries() {
		fmt.Fprintf(w, "  %-10s %s\n", e.Name, describe(e.Sorter))
	}
}

// describe returns the type and settings of a sorter
func describe(s sortlab.Sorter[int64]) string {
	switch v := s.(type) {
	case *sortlab.Radix[int64]:
		return fmt.Sprintf("base %d", v.Base)
	case sortlab.Quick[int64]:
		return fmt.Sprintf("pivot %s", v.Pivot)
	}
	name := fmt.Sprintf("%T", s)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToLower(strings.TrimSuffix(name, "[int64]"))
}

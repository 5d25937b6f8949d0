package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/lanrat/sortlab"
)

// printSummary reports the fastest algorithm per scenario at its largest
// sample size, the aborted rows and the files written
func printSummary(w io.Writer, report *sortlab.Report, files []string) {
	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	var scenarios []string
	seen := make(map[string]bool)
	for _, row := range report.Rows {
		if !seen[row.Scenario] {
			seen[row.Scenario] = true
			scenarios = append(scenarios, row.Scenario)
		}
	}

	fmt.Fprintln(w, bold("fastest at the largest sample size"))
	for _, s := range scenarios {
		winners := report.Winner(s)
		sizes := make([]int, 0, len(winners))
		for n := range winners {
			sizes = append(sizes, n)
		}
		sort.Ints(sizes)
		largest := sizes[len(sizes)-1]
		fmt.Fprintf(w, "  %-12s %12s  %s\n", s, humanize.Comma(int64(largest)), green(winners[largest]))
	}

	if len(report.Aborted) > 0 {
		fmt.Fprintln(w, bold("aborted rows"))
		for _, a := range report.Aborted {
			fmt.Fprintf(w, "  %s\n", yellow(a.Error()))
		}
	}

	fmt.Fprintln(w, bold("results"))
	for _, f := range files {
		fmt.Fprintf(w, "  %s\n", f)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/parley/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to conversation fixture JSON")
	verbose := flag.Bool("v", false, "print outbound messages per turn")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/conversation.json [-v]")
		os.Exit(2)
	}

	f, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		os.Exit(2)
	}

	outcomes, summary, err := replay.Replay(context.Background(), f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		os.Exit(2)
	}

	os.Exit(printReport(f, outcomes, summary, *verbose))
}

// #endregion main

// #region output

func printReport(f *replay.Fixture, outcomes []replay.TurnOutcome, summary replay.Summary, verbose bool) int {
	if f.Description != "" {
		fmt.Printf("Fixture: %s\n\n", f.Description)
	}

	fmt.Printf("%-12s| %-10s| %-14s| %-10s| %s\n", "Turn", "Final", "Clarifications", "Selected", "Result")
	fmt.Printf("%-12s+%-11s+%-15s+%-11s+%s\n",
		"------------", "-----------", "---------------", "-----------", "--------")

	for _, o := range outcomes {
		result := "OK"
		if !o.Passed {
			result = "DIFF: " + o.Reason
		}
		selected := o.SelectedID
		if selected == "" {
			selected = "-"
		}
		fmt.Printf("%-12s| %-10s| %-14d| %-10s| %s\n",
			o.TurnID, o.FinalState, o.ClarificationCount, selected, result)

		if verbose {
			for _, msg := range o.Outbound {
				fmt.Printf("    %s: %s\n", msg.Role, msg.Content)
			}
		}
	}

	fmt.Printf("\nSummary: %d total, %d match, %d diverge\n", summary.TotalTurns, summary.Passed, summary.Failed)
	if summary.Failed > 0 {
		return 1
	}
	return 0
}

// #endregion output

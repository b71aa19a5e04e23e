package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"daywork/internal/clock"
	"daywork/internal/report"
)

var sumCmd = &cobra.Command{
	Use:   "sum [start-end ...]",
	Short: "Evaluate intervals without the interactive UI",
	Long: `Evaluate a set of start-end intervals and print the summary.
A trailing '-' marks the open interval (its end is the current time).

Examples:
  daywork sum 9:00-12:00 13:00-
  daywork sum --target 8:00 --at 17:30 9:00-12:30 13:00-17:15`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetText, _ := cmd.Flags().GetString("target")
		atText, _ := cmd.Flags().GetString("at")

		now := time.Now().Truncate(time.Second)
		if atText != "" {
			at, err := clock.Parse(atText)
			if err != nil {
				return fmt.Errorf("invalid --at %q: %w", atText, err)
			}
			now = at.At(now)
		}

		rows, err := parseIntervalArgs(args)
		if err != nil {
			return err
		}

		res := report.Evaluate(rows, targetText, now)
		fmt.Println(res.Export())

		if !res.Valid() {
			return fmt.Errorf("schedule is invalid: %s", res.Status)
		}
		return nil
	},
}

// parseIntervalArgs splits "start-end" arguments into rows. The split is
// on the first '-' only; clock times never contain one.
func parseIntervalArgs(args []string) ([]report.Row, error) {
	rows := make([]report.Row, 0, len(args))
	for _, arg := range args {
		start, end, ok := strings.Cut(arg, "-")
		if !ok {
			return nil, fmt.Errorf("invalid interval %q: want start-end or start- for an open interval", arg)
		}
		rows = append(rows, report.Row{Start: start, End: end})
	}
	return rows, nil
}

func init() {
	sumCmd.Flags().String("target", "08:30:00", "target duration (H, H:MM or H:MM:SS)")
	sumCmd.Flags().String("at", "", "evaluate at this clock time instead of now")
}

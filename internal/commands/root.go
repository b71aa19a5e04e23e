package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"daywork/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "daywork",
	Short: "A daily work-time calculator for the terminal",
	Long: `daywork tracks the start/end intervals you worked today, compares them
against a target duration, and projects the clock time at which you will
reach the target or the next whole overtime hour. Everything lives in
memory for the current day; nothing is stored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetString("target")
		return tui.RunDayTUI(target)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("daywork %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().String("target", "08:30:00", "target duration for a full workday (H, H:MM or H:MM:SS)")

	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(versionCmd)
}

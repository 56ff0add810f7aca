package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tymora/tymora/internal/timeutil"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running timer or the selected day's total",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if active := a.sess.Active(); active != nil {
		elapsed, err := timeutil.MinutesBetween(active.StartTime, timeutil.Clock(time.Now()))
		if err != nil {
			return err
		}
		fmt.Println("Running:")
		fmt.Printf("  Activity: %s\n", active.Name)
		fmt.Printf("  Category: %s\n", active.Category)
		fmt.Printf("  Since: %s\n", active.StartTime)
		fmt.Printf("  Elapsed: %s\n", timeutil.FormatMinutes(elapsed))
		return nil
	}

	day, ok, err := a.sess.DayLog()
	if err != nil {
		return err
	}

	total := 0
	if ok {
		for _, act := range day.Activities {
			if act.DurationMinutes != nil {
				total += *act.DurationMinutes
			}
		}
	}

	fmt.Println("No active timer.")
	fmt.Printf("%s: %s logged in %d activities.\n", a.sess.Date, timeutil.FormatMinutes(total), len(day.Activities))
	return nil
}

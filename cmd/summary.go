package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/tymora/tymora/internal/timeutil"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the selected day's time distribution by category",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	day, ok, err := a.sess.DayLog()
	if err != nil {
		return err
	}
	if !ok || len(day.Activities) == 0 {
		fmt.Printf("No data for %s yet.\n", a.sess.Date)
		return nil
	}

	total := 0
	minutes := map[string]int{}
	var order []string
	for _, act := range day.Activities {
		d := 0
		if act.DurationMinutes != nil {
			d = *act.DurationMinutes
		}
		if _, seen := minutes[act.Category]; !seen {
			order = append(order, act.Category)
		}
		minutes[act.Category] += d
		total += d
	}

	fmt.Printf("Daily Summary – %s\n", a.sess.Date)
	fmt.Printf("Tracked: %.1fh\n\n", float64(total)/60)

	for _, cat := range order {
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(minutes[cat]) / float64(total) * 100))
		}
		dot := categoryColor(cat).Sprint("●")
		fmt.Printf("%s %-12s %8s  %3d%%\n", dot, cat, timeutil.FormatMinutes(minutes[cat]), pct)
	}
	return nil
}

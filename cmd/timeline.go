package cmd

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tymora/tymora/internal/model"
	"github.com/tymora/tymora/internal/timeutil"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the selected day's activities in chronological order",
	Args:  cobra.NoArgs,
	RunE:  runTimeline,
}

func runTimeline(cmd *cobra.Command, args []string) error {
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
		fmt.Printf("No activities logged for %s.\n", a.sess.Date)
		return nil
	}

	// Stored order is append order; the timeline sorts by start time.
	acts := append([]model.Activity(nil), day.Activities...)
	sort.SliceStable(acts, func(i, j int) bool {
		return acts[i].StartTime < acts[j].StartTime
	})

	fmt.Println(a.sess.Date)
	for _, act := range acts {
		dot := categoryColor(act.Category).Sprint("●")
		end := "ongoing"
		if act.EndTime != nil {
			end = *act.EndTime
		}
		dur := ""
		if act.DurationMinutes != nil {
			dur = fmt.Sprintf(" (%s)", timeutil.FormatMinutes(*act.DurationMinutes))
		}
		mood := ""
		if act.Mood != "" {
			mood = " " + model.MoodEmoji(act.Mood)
		}
		fmt.Printf("%s %s–%s  %s [%s]%s%s  %s\n",
			dot, act.StartTime, end, act.Name, act.Category, dur, mood, act.ID)
	}
	return nil
}

// categoryColor maps a category's color token to a terminal color,
// defaulting for unknown categories.
func categoryColor(label string) *color.Color {
	switch model.CategoryByLabel(label).Color {
	case "blue":
		return color.New(color.FgBlue)
	case "green":
		return color.New(color.FgGreen)
	case "orange":
		return color.New(color.FgYellow)
	case "purple":
		return color.New(color.FgMagenta)
	case "red":
		return color.New(color.FgRed)
	default:
		return color.New(color.FgHiBlack)
	}
}

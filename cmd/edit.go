package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tymora/tymora/internal/timeutil"
)

var (
	editStart    string
	editEnd      string
	editName     string
	editCategory string
	editSubCat   string
	editTags     string
	editNotes    string
	editEnergy   string
	editMood     string
	editMoveTo   string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a logged activity",
	Long: `Edit a logged activity by id. The id is looked up across all days.
With --move-to the activity is moved to another day's log, which is
created if needed. An unknown id is reported but is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editStart, "start", "", "New start time (HH:MM)")
	editCmd.Flags().StringVar(&editEnd, "end", "", "New end time (HH:MM)")
	editCmd.Flags().StringVar(&editName, "name", "", "New activity description")
	editCmd.Flags().StringVar(&editCategory, "category", "", "New category")
	editCmd.Flags().StringVar(&editSubCat, "sub-category", "", "New sub-category")
	editCmd.Flags().StringVar(&editTags, "tags", "", "New comma-separated tags")
	editCmd.Flags().StringVar(&editNotes, "notes", "", "New notes")
	editCmd.Flags().StringVar(&editEnergy, "energy", "", "New energy level: low, medium, high")
	editCmd.Flags().StringVar(&editMood, "mood", "", "New mood label")
	editCmd.Flags().StringVar(&editMoveTo, "move-to", "", "Move to another date (YYYY-MM-DD)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	id := args[0]

	doc, err := a.store.Load()
	if err != nil {
		return err
	}
	day, idx := doc.FindActivity(id)
	if idx < 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "No activity with id %s.\n", id)
		return nil
	}

	act := day.Activities[idx]
	flags := cmd.Flags()
	timesChanged := false

	if flags.Changed("start") {
		act.StartTime = editStart
		timesChanged = true
	}
	if flags.Changed("end") {
		end := editEnd
		act.EndTime = &end
		timesChanged = true
	}
	if flags.Changed("name") {
		act.Name = editName
	}
	if flags.Changed("category") {
		act.Category = resolveCategory(editCategory)
	}
	if flags.Changed("sub-category") {
		act.SubCategory = &editSubCat
	}
	if flags.Changed("tags") {
		act.Tags = splitTags(editTags)
	}
	if flags.Changed("notes") {
		act.Notes = &editNotes
	}
	if flags.Changed("energy") {
		energy, err := parseEnergy(editEnergy)
		if err != nil {
			return err
		}
		act.EnergyLevel = energy
	}
	if flags.Changed("mood") {
		act.Mood = editMood
	}

	// Duration is fixed at edit time whenever a time changed.
	if timesChanged && act.EndTime != nil {
		minutes, err := timeutil.MinutesBetweenRollover(act.StartTime, *act.EndTime)
		if err != nil {
			return err
		}
		act.DurationMinutes = &minutes
	}

	found, err := a.sess.Update(act, editMoveTo)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintf(cmd.ErrOrStderr(), "No activity with id %s.\n", id)
		return nil
	}

	if editMoveTo != "" && editMoveTo != day.Date {
		fmt.Printf("Updated %q and moved it from %s to %s\n", act.Name, day.Date, editMoveTo)
	} else {
		fmt.Printf("Updated %q on %s\n", act.Name, day.Date)
	}
	return nil
}

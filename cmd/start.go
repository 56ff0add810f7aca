package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tymora/tymora/internal/model"
)

var (
	startCategory string
	startSubCat   string
	startTags     string
	startNotes    string
	startEnergy   string
	startMood     string
	startAt       string
)

var startCmd = &cobra.Command{
	Use:   "start <activity>",
	Short: "Start a timer for a new activity",
	Args:  cobra.ExactArgs(1),
	RunE:  runStart,
}

func init() {
	startCmd.Flags().StringVar(&startCategory, "category", "", "Category (Work, Personal, Home, Learning, Health, Other)")
	startCmd.Flags().StringVar(&startSubCat, "sub-category", "", "Optional sub-category")
	startCmd.Flags().StringVar(&startTags, "tags", "", "Comma-separated tags")
	startCmd.Flags().StringVar(&startNotes, "notes", "", "Optional notes")
	startCmd.Flags().StringVar(&startEnergy, "energy", "", "Energy level: low, medium, high")
	startCmd.Flags().StringVar(&startMood, "mood", "", "Mood label (focused, calm, busy, tired, happy, ...)")
	startCmd.Flags().StringVar(&startAt, "at", "", "Start time as HH:MM (default now)")
}

func runStart(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	// Auto-stop an already running timer before starting a new one.
	if active := a.sess.Active(); active != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: auto-stopping running timer for %q\n", active.Name)
		if _, err := a.sess.Stop(time.Now()); err != nil {
			return err
		}
	}

	energy, err := parseEnergy(startEnergy)
	if err != nil {
		return err
	}

	act := model.Activity{
		StartTime:   startAt,
		Category:    resolveCategory(startCategory),
		Name:        args[0],
		Tags:        splitTags(startTags),
		EnergyLevel: energy,
		Mood:        startMood,
	}
	if startSubCat != "" {
		act.SubCategory = &startSubCat
	}
	if startNotes != "" {
		act.Notes = &startNotes
	}

	started, err := a.sess.Start(act)
	if err != nil {
		return err
	}

	fmt.Printf("Started %q (%s) at %s\n", started.Name, started.Category, started.StartTime)
	return nil
}

// resolveCategory canonicalizes a category given as id or label; unknown
// values pass through as free text so the vocabulary can evolve.
func resolveCategory(s string) string {
	if s == "" {
		return model.DefaultCategory.Label
	}
	for _, c := range model.Categories {
		if strings.EqualFold(s, c.ID) || strings.EqualFold(s, c.Label) {
			return c.Label
		}
	}
	return s
}

func parseEnergy(s string) (model.EnergyLevel, error) {
	switch model.EnergyLevel(s) {
	case "", model.EnergyLow, model.EnergyMedium, model.EnergyHigh:
		return model.EnergyLevel(s), nil
	default:
		return "", fmt.Errorf("invalid energy level %q: want low, medium or high", s)
	}
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tymora/tymora/internal/model"
	"github.com/tymora/tymora/internal/timeutil"
)

var (
	logStart    string
	logEnd      string
	logCategory string
	logSubCat   string
	logTags     string
	logNotes    string
	logEnergy   string
	logMood     string
)

var logCmd = &cobra.Command{
	Use:   "log <activity>",
	Short: "Log a completed activity manually",
	Long: `Log a completed activity with explicit start and end times into the
selected date. This is the one path that supports an interval crossing
midnight: an end time before the start time is taken as next-day.`,
	Args: cobra.ExactArgs(1),
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVar(&logStart, "start", "", "Start time as HH:MM (required)")
	logCmd.Flags().StringVar(&logEnd, "end", "", "End time as HH:MM (required)")
	logCmd.Flags().StringVar(&logCategory, "category", "", "Category (Work, Personal, Home, Learning, Health, Other)")
	logCmd.Flags().StringVar(&logSubCat, "sub-category", "", "Optional sub-category")
	logCmd.Flags().StringVar(&logTags, "tags", "", "Comma-separated tags")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "Optional notes")
	logCmd.Flags().StringVar(&logEnergy, "energy", "", "Energy level: low, medium, high")
	logCmd.Flags().StringVar(&logMood, "mood", "", "Mood label")
	_ = logCmd.MarkFlagRequired("start")
	_ = logCmd.MarkFlagRequired("end")
}

func runLog(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	energy, err := parseEnergy(logEnergy)
	if err != nil {
		return err
	}

	end := logEnd
	act := model.Activity{
		StartTime:   logStart,
		EndTime:     &end,
		Category:    resolveCategory(logCategory),
		Name:        args[0],
		Tags:        splitTags(logTags),
		EnergyLevel: energy,
		Mood:        logMood,
	}
	if logSubCat != "" {
		act.SubCategory = &logSubCat
	}
	if logNotes != "" {
		act.Notes = &logNotes
	}

	logged, err := a.sess.LogManual(act, "")
	if err != nil {
		return err
	}

	fmt.Printf("Logged %q (%s) on %s: %s–%s, %s\n",
		logged.Name, logged.Category, a.sess.Date,
		logged.StartTime, *logged.EndTime,
		timeutil.FormatMinutes(*logged.DurationMinutes))
	return nil
}

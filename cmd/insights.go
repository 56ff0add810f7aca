package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tymora/tymora/internal/insight"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show rule-based insights for the selected day",
	Args:  cobra.NoArgs,
	RunE:  runInsights,
}

func runInsights(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	day, ok, err := a.sess.DayLog()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Printf("No activities logged for %s.\n", a.sess.Date)
		return nil
	}

	insights := insight.Generate(day)
	if len(insights) == 0 {
		fmt.Printf("No insights for %s.\n", a.sess.Date)
		return nil
	}

	for _, in := range insights {
		fmt.Printf("%s %s\n", insightColor(in.Type).Sprintf("[%s]", in.Category), in.Title)
		fmt.Printf("   %s\n", in.Description)
	}
	return nil
}

func insightColor(t insight.Type) *color.Color {
	switch t {
	case insight.TypeWarning:
		return color.New(color.FgYellow)
	case insight.TypePositive:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgCyan)
	}
}

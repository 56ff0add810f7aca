package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tymora/tymora/internal/model"
)

var themeCmd = &cobra.Command{
	Use:   "theme [id]",
	Short: "Show or set the app theme",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTheme,
}

func runTheme(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if len(args) == 1 {
		if err := a.sess.SetTheme(args[0]); err != nil {
			return err
		}
	}

	current := a.sess.Theme()
	for _, t := range model.Themes {
		marker := " "
		if t.ID == current.ID {
			marker = "*"
		}
		fmt.Printf("%s %-8s %s\n", marker, t.ID, t.Label)
	}
	return nil
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var retentionCmd = &cobra.Command{
	Use:   "retention [days]",
	Short: "Show or set how many days of history are kept",
	Long: `Show or set the history retention window (1–7 days). A retention of
N keeps today plus the N preceding calendar days. Lowering the value
immediately deletes older days.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRetention,
}

func runRetention(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if len(args) == 0 {
		days, err := a.sess.Retention()
		if err != nil {
			return err
		}
		fmt.Printf("History retention: %d days\n", days)
		return nil
	}

	days, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid retention %q: %w", args[0], err)
	}
	if err := a.sess.SetRetention(days); err != nil {
		return err
	}
	fmt.Printf("History retention set to %d days.\n", days)
	return nil
}

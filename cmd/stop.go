package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tymora/tymora/internal/session"
	"github.com/tymora/tymora/internal/timeutil"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running timer and log the activity",
	Args:  cobra.NoArgs,
	RunE:  runStop,
}

func runStop(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	done, err := a.sess.Stop(time.Now())
	if errors.Is(err, session.ErrNoActiveTimer) {
		fmt.Fprintln(cmd.ErrOrStderr(), "No active timer to stop.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Stopped %q on %s. Logged %s (%s–%s)\n",
		done.Name, a.sess.Date,
		timeutil.FormatMinutes(*done.DurationMinutes),
		done.StartTime, *done.EndTime)
	return nil
}

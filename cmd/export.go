package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full activity history as JSON",
	Long: `Export the whole durable document verbatim to a dated backup file
(tymora-backup-YYYY-MM-DD.json in the current directory by default).`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "Output file or directory (default dated file in cwd)")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	data, name, err := a.store.Export()
	if err != nil {
		return err
	}

	path := name
	if exportOut != "" {
		if info, err := os.Stat(exportOut); err == nil && info.IsDir() {
			path = filepath.Join(exportOut, name)
		} else {
			path = exportOut
		}
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	fmt.Printf("Exported to %s\n", path)
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import an activity history backup, replacing current data",
	Long: `Import a backup file in the export format. The file must contain a
"days" array; anything else is rejected without touching existing data.
On success the whole durable document is replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	// Opens the raw store so a corrupt document can still be replaced by a
	// good backup.
	_, st, logger, err := openStore()
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error().Err(err).Msg("closing store")
		}
	}()

	payload, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	if err := st.Import(payload); err != nil {
		return err
	}
	fmt.Println("Data imported successfully.")
	return nil
}

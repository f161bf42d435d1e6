package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/book"
	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/guid"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/storage"
)

func newInitCommand() *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new book with a default chart of accounts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, currency)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "EUR", "main (reporting) currency code")

	return cmd
}

func runInit(cmd *cobra.Command, dir, currency string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	configPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", configPath)
	}

	bookPath := filepath.Join(dir, "book.db")
	store, err := storage.Open(bookPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	if err := store.Migrate(ctx); err != nil {
		return err
	}

	main := model.Commodity{
		GUID:      guid.New(),
		Namespace: model.NamespaceCurrency,
		Mnemonic:  currency,
		FullName:  currency,
	}
	if err := store.SaveCommodity(ctx, main); err != nil {
		return err
	}

	for _, a := range book.DefaultChart(main) {
		if err := store.SaveAccount(ctx, a); err != nil {
			return err
		}
	}

	cfg := config.Default(bookPath, currency)
	if err := config.Save(configPath, cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized book at %s (%s)\n", bookPath, currency)
	return nil
}

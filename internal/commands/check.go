package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCommand(bookPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the account hierarchy and all transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*bookPath)
			if err != nil {
				return err
			}

			store, b, err := openBook(cmd.Context(), e)
			if err != nil {
				return err
			}
			defer store.Close()

			errs := b.Check()
			if len(errs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Book is valid")
				return nil
			}

			for _, ve := range errs {
				fmt.Fprintln(cmd.ErrOrStderr(), ve.Error())
			}
			return fmt.Errorf("%d validation problems", len(errs))
		},
	}

	return cmd
}

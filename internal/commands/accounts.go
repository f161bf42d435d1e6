package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/book"
	"github.com/tally-dev/tally/internal/model"
)

func newAccountsCommand(bookPath *string) *cobra.Command {
	var showHidden bool

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the account tree with native balances",
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

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			if err := printTree(w, b, b.Root(), 0, showHidden); err != nil {
				return err
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&showHidden, "hidden", false, "include hidden accounts")

	return cmd
}

func printTree(w *tabwriter.Writer, b *book.Book, a model.Account, depth int, showHidden bool) error {
	if a.Hidden && !showHidden {
		return nil
	}

	if !a.IsRoot() {
		total, err := b.Total(a.GUID, zeroTime)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s%s\t%s\t%s\n",
			strings.Repeat("  ", depth-1), a.Name, a.Type, total)
	}

	for _, child := range b.Children(a.GUID) {
		if err := printTree(w, b, child, depth+1, showHidden); err != nil {
			return err
		}
	}
	return nil
}

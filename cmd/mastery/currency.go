package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/money-mastery/internal/cli"
	"github.com/Veraticus/money-mastery/internal/model"
)

func currencyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency [code]",
		Short: "Show or set the preferred currency",
		Long: `With no argument, prints the current preferred currency. With a
currency code argument, makes it the preferred currency for all amounts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			if len(args) == 0 {
				fmt.Printf("Preferred currency: %s\n", cli.BoldStyle.Render(string(app.store.Currency(ctx))))
				return nil
			}

			c := model.Currency(args[0])
			if !c.Valid() {
				return fmt.Errorf("unsupported currency %q (supported: %v)", args[0], model.Currencies())
			}
			app.store.SetCurrency(ctx, c)

			// Amounts in the document carry the currency too, so the
			// change has to flow through it.
			doc := app.store.Document(ctx)
			doc.Currency = c
			app.store.SaveDocument(ctx, doc)

			fmt.Printf("%s preferred currency to %s\n", cli.SuccessStyle.Render("Changed"), c)
			return nil
		},
	}
	return cmd
}

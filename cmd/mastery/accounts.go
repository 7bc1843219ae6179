package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/money-mastery/internal/calc"
	"github.com/Veraticus/money-mastery/internal/cli"
	"github.com/Veraticus/money-mastery/internal/ledger"
	"github.com/Veraticus/money-mastery/internal/model"
	"github.com/Veraticus/money-mastery/internal/validate"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage bank, cash, and mobile money accounts",
	}
	cmd.AddCommand(accountsAddCmd())
	cmd.AddCommand(accountsListCmd())
	cmd.AddCommand(accountsUpdateCmd())
	cmd.AddCommand(accountsDeleteCmd())
	return cmd
}

func accountsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			balance, err := validate.Amount("balance", mustString(cmd, "balance"))
			if err != nil {
				return err
			}

			a := app.ledger.AddAccount(ctx, model.Account{
				Name:          mustString(cmd, "name"),
				Type:          model.AccountType(mustString(cmd, "type")),
				Balance:       balance,
				Currency:      model.Currency(mustString(cmd, "currency")),
				Institution:   mustString(cmd, "institution"),
				AccountNumber: mustString(cmd, "number"),
			})
			fmt.Printf("%s account %s (%s)\n", cli.SuccessStyle.Render("Added"), a.Name, a.ID)
			return nil
		},
	}
	cmd.Flags().String("name", "", "account name")
	cmd.Flags().String("type", string(model.AccountBank), "bank, cash, mobile-money, investment, or other")
	cmd.Flags().String("balance", "0", "current balance")
	cmd.Flags().String("currency", "", "account currency (default: preferred currency)")
	cmd.Flags().String("institution", "", "bank or provider name")
	cmd.Flags().String("number", "", "account number, if any")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func accountsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show accounts and balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			doc := app.store.Document(ctx)
			fmt.Println(cli.TitleStyle.Render("Accounts"))
			for _, a := range doc.Accounts {
				fmt.Printf("%-20s %-13s %s  %s\n",
					a.Name,
					a.Type,
					cli.Amount(calc.FormatCurrency(a.Balance, a.Currency), a.Balance < 0),
					cli.SubtleStyle.Render(a.ID))
			}
			return nil
		},
	}
}

func accountsUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			balance, err := amountFlag(cmd, "balance")
			if err != nil {
				return err
			}
			var typ *model.AccountType
			if raw := strFlag(cmd, "type"); raw != nil {
				t := model.AccountType(*raw)
				typ = &t
			}
			var cur *model.Currency
			if raw := strFlag(cmd, "currency"); raw != nil {
				c := model.Currency(*raw)
				if !c.Valid() {
					return fmt.Errorf("unsupported currency %q", c)
				}
				cur = &c
			}

			if !app.ledger.UpdateAccount(ctx, args[0], ledger.AccountUpdate{
				Name:          strFlag(cmd, "name"),
				Type:          typ,
				Balance:       balance,
				Currency:      cur,
				Institution:   strFlag(cmd, "institution"),
				AccountNumber: strFlag(cmd, "number"),
			}) {
				fmt.Println(cli.WarningStyle.Render("No account with that id."))
				return nil
			}
			fmt.Println(cli.SuccessStyle.Render("Updated."))
			return nil
		},
	}
	cmd.Flags().String("name", "", "new name")
	cmd.Flags().String("type", "", "bank, cash, mobile-money, investment, or other")
	cmd.Flags().String("balance", "", "new balance")
	cmd.Flags().String("currency", "", "new currency")
	cmd.Flags().String("institution", "", "new institution")
	cmd.Flags().String("number", "", "new account number")
	return cmd
}

func accountsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			app.ledger.DeleteAccount(ctx, args[0])
			fmt.Println(cli.SuccessStyle.Render("Deleted."))
			return nil
		},
	}
}

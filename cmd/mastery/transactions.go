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

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Record and review transactions",
	}
	cmd.AddCommand(transactionsAddCmd())
	cmd.AddCommand(transactionsListCmd())
	cmd.AddCommand(transactionsUpdateCmd())
	cmd.AddCommand(transactionsDeleteCmd())
	return cmd
}

func transactionsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			rawAmount, _ := cmd.Flags().GetString("amount")
			amount, err := validate.PositiveAmount("amount", rawAmount)
			if err != nil {
				return err
			}

			typ := model.TransactionType(mustString(cmd, "type"))
			if typ != model.TypeIncome && typ != model.TypeExpense {
				return fmt.Errorf("invalid type %q: must be income or expense", typ)
			}

			txn := app.ledger.AddTransaction(ctx, model.Transaction{
				Date:        mustString(cmd, "date"),
				Description: mustString(cmd, "description"),
				Amount:      amount,
				Category:    mustString(cmd, "category"),
				Type:        typ,
			})

			currency := app.store.Currency(ctx)
			fmt.Printf("%s %s %s (%s)\n",
				cli.SuccessStyle.Render("Recorded"),
				txn.Description,
				cli.Amount(calc.FormatCurrency(txn.Amount, currency), txn.Type == model.TypeExpense),
				txn.ID)
			return nil
		},
	}
	cmd.Flags().String("description", "", "what the money was for")
	cmd.Flags().String("amount", "", "amount (always positive; direction comes from --type)")
	cmd.Flags().String("category", "Uncategorized", "free-text category")
	cmd.Flags().String("type", string(model.TypeExpense), "income or expense")
	cmd.Flags().String("date", "", "ISO date-time (default: now)")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func transactionsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			limit, _ := cmd.Flags().GetInt("limit")
			doc := app.store.Document(ctx)

			fmt.Println(cli.TitleStyle.Render("Transactions"))
			for i, t := range doc.Transactions {
				if limit > 0 && i >= limit {
					fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("… and %d more", len(doc.Transactions)-limit)))
					break
				}
				fmt.Printf("%s  %-30s %-15s %s  %s\n",
					t.Date[:min(10, len(t.Date))],
					t.Description,
					t.Category,
					cli.Amount(calc.FormatCurrency(t.Magnitude(), doc.Currency), t.Type == model.TypeExpense),
					cli.SubtleStyle.Render(t.ID))
			}
			return nil
		},
	}
	cmd.Flags().Int("limit", 20, "maximum transactions to show (0 for all)")
	return cmd
}

func transactionsUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			amount, err := amountFlag(cmd, "amount")
			if err != nil {
				return err
			}
			var typ *model.TransactionType
			if raw := strFlag(cmd, "type"); raw != nil {
				t := model.TransactionType(*raw)
				if t != model.TypeIncome && t != model.TypeExpense {
					return fmt.Errorf("invalid type %q: must be income or expense", t)
				}
				typ = &t
			}

			if !app.ledger.UpdateTransaction(ctx, args[0], ledger.TransactionUpdate{
				Date:        strFlag(cmd, "date"),
				Description: strFlag(cmd, "description"),
				Amount:      amount,
				Category:    strFlag(cmd, "category"),
				Type:        typ,
			}) {
				fmt.Println(cli.WarningStyle.Render("No transaction with that id."))
				return nil
			}
			fmt.Println(cli.SuccessStyle.Render("Updated."))
			return nil
		},
	}
	cmd.Flags().String("description", "", "new description")
	cmd.Flags().String("amount", "", "new amount")
	cmd.Flags().String("category", "", "new category")
	cmd.Flags().String("type", "", "income or expense")
	cmd.Flags().String("date", "", "new ISO date-time")
	return cmd
}

func transactionsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			app.ledger.DeleteTransaction(ctx, args[0])
			fmt.Println(cli.SuccessStyle.Render("Deleted."))
			return nil
		},
	}
}

// mustString reads a string flag that is known to exist.
func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

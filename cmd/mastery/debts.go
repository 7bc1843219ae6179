package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/Veraticus/money-mastery/internal/calc"
	"github.com/Veraticus/money-mastery/internal/cli"
	"github.com/Veraticus/money-mastery/internal/ledger"
	"github.com/Veraticus/money-mastery/internal/model"
	"github.com/Veraticus/money-mastery/internal/validate"
)

func debtsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debts",
		Short: "Track debts and payoff timelines",
	}
	cmd.AddCommand(debtsAddCmd())
	cmd.AddCommand(debtsListCmd())
	cmd.AddCommand(debtsUpdateCmd())
	cmd.AddCommand(debtsDeleteCmd())
	return cmd
}

func debtsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a debt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			total, err := validate.PositiveAmount("total", mustString(cmd, "total"))
			if err != nil {
				return err
			}
			remaining, err := validate.NonNegativeAmount("remaining", mustString(cmd, "remaining"))
			if err != nil {
				return err
			}
			rate, err := validate.Rate("rate", mustString(cmd, "rate"))
			if err != nil {
				return err
			}
			minimum, err := validate.NonNegativeAmount("minimum", mustString(cmd, "minimum"))
			if err != nil {
				return err
			}

			d := app.ledger.AddDebt(ctx, model.Debt{
				Name:            mustString(cmd, "name"),
				TotalAmount:     total,
				RemainingAmount: remaining,
				InterestRate:    rate,
				MinimumPayment:  minimum,
				DueDate:         mustString(cmd, "due"),
				Type:            model.DebtType(mustString(cmd, "type")),
			})
			fmt.Printf("%s debt %s (%s)\n", cli.SuccessStyle.Render("Recorded"), d.Name, d.ID)
			return nil
		},
	}
	cmd.Flags().String("name", "", "who or what the debt is owed to")
	cmd.Flags().String("total", "", "original amount borrowed")
	cmd.Flags().String("remaining", "", "amount still owed")
	cmd.Flags().String("rate", "0", "annual interest rate percent")
	cmd.Flags().String("minimum", "0", "minimum monthly payment")
	cmd.Flags().String("due", "", "next payment due date")
	cmd.Flags().String("type", string(model.DebtOther), "credit-card, loan, mortgage, or other")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("remaining")
	return cmd
}

func debtsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show debts with payoff estimates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			doc := app.store.Document(ctx)
			fmt.Println(cli.TitleStyle.Render("Debts"))
			for _, d := range doc.Debts {
				fmt.Printf("%-20s %s remaining of %s  %.1f%%  payoff: %s  %s\n",
					d.Name,
					cli.ErrorStyle.Render(calc.FormatCurrency(d.RemainingAmount, doc.Currency)),
					calc.FormatCurrency(d.TotalAmount, doc.Currency),
					d.InterestRate,
					payoffLabel(calc.DebtPayoffMonths(d.RemainingAmount, d.MinimumPayment, d.InterestRate)),
					cli.SubtleStyle.Render(d.ID))
			}
			return nil
		},
	}
}

// payoffLabel renders a payoff horizon in months. Payments that never
// retire the balance (zero payment, or interest outrunning the payment)
// show as "never".
func payoffLabel(months float64) string {
	if math.IsInf(months, 1) || math.IsNaN(months) {
		return cli.ErrorStyle.Render("never")
	}
	return fmt.Sprintf("%.0f months", months)
}

func debtsUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a debt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			total, err := amountFlag(cmd, "total")
			if err != nil {
				return err
			}
			remaining, err := amountFlag(cmd, "remaining")
			if err != nil {
				return err
			}
			rate, err := amountFlag(cmd, "rate")
			if err != nil {
				return err
			}
			minimum, err := amountFlag(cmd, "minimum")
			if err != nil {
				return err
			}
			var typ *model.DebtType
			if raw := strFlag(cmd, "type"); raw != nil {
				t := model.DebtType(*raw)
				typ = &t
			}

			if !app.ledger.UpdateDebt(ctx, args[0], ledger.DebtUpdate{
				Name:            strFlag(cmd, "name"),
				TotalAmount:     total,
				RemainingAmount: remaining,
				InterestRate:    rate,
				MinimumPayment:  minimum,
				DueDate:         strFlag(cmd, "due"),
				Type:            typ,
			}) {
				fmt.Println(cli.WarningStyle.Render("No debt with that id."))
				return nil
			}
			fmt.Println(cli.SuccessStyle.Render("Updated."))
			return nil
		},
	}
	cmd.Flags().String("name", "", "new name")
	cmd.Flags().String("total", "", "new original amount")
	cmd.Flags().String("remaining", "", "new remaining amount")
	cmd.Flags().String("rate", "", "new annual interest rate percent")
	cmd.Flags().String("minimum", "", "new minimum monthly payment")
	cmd.Flags().String("due", "", "new due date")
	cmd.Flags().String("type", "", "credit-card, loan, mortgage, or other")
	return cmd
}

func debtsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a debt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			app.ledger.DeleteDebt(ctx, args[0])
			fmt.Println(cli.SuccessStyle.Render("Deleted."))
			return nil
		},
	}
}

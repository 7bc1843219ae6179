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

func liabilitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liabilities",
		Short: "Track long-running obligations",
	}
	cmd.AddCommand(liabilitiesAddCmd())
	cmd.AddCommand(liabilitiesListCmd())
	cmd.AddCommand(liabilitiesUpdateCmd())
	cmd.AddCommand(liabilitiesDeleteCmd())
	return cmd
}

func liabilitiesAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a liability",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			amount, err := validate.PositiveAmount("amount", mustString(cmd, "amount"))
			if err != nil {
				return err
			}
			rate, err := validate.Rate("rate", mustString(cmd, "rate"))
			if err != nil {
				return err
			}
			monthly, err := validate.NonNegativeAmount("monthly", mustString(cmd, "monthly"))
			if err != nil {
				return err
			}

			l := app.ledger.AddLiability(ctx, model.Liability{
				Name:           mustString(cmd, "name"),
				Type:           model.LiabilityType(mustString(cmd, "type")),
				Amount:         amount,
				InterestRate:   rate,
				MonthlyPayment: monthly,
				DueDate:        mustString(cmd, "due"),
			})
			fmt.Printf("%s liability %s (%s)\n", cli.SuccessStyle.Render("Recorded"), l.Name, l.ID)
			return nil
		},
	}
	cmd.Flags().String("name", "", "liability name")
	cmd.Flags().String("type", string(model.LiabilityOther), "mortgage, car-loan, personal-loan, credit-card, or other")
	cmd.Flags().String("amount", "", "amount owed")
	cmd.Flags().String("rate", "0", "annual interest rate percent")
	cmd.Flags().String("monthly", "0", "monthly payment")
	cmd.Flags().String("due", "", "payment due date")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func liabilitiesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show liabilities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			doc := app.store.Document(ctx)
			fmt.Println(cli.TitleStyle.Render("Liabilities"))
			var total float64
			for _, l := range doc.Liabilities {
				total += l.Amount
				fmt.Printf("%-20s %-14s %s  %.1f%%  %s\n",
					l.Name,
					l.Type,
					cli.ErrorStyle.Render(calc.FormatCurrency(l.Amount, doc.Currency)),
					l.InterestRate,
					cli.SubtleStyle.Render(l.ID))
			}
			fmt.Printf("\n%s %s\n", cli.BoldStyle.Render("Total:"), cli.ErrorStyle.Render(calc.FormatCurrency(total, doc.Currency)))
			return nil
		},
	}
}

func liabilitiesUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a liability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			amount, err := amountFlag(cmd, "amount")
			if err != nil {
				return err
			}
			rate, err := amountFlag(cmd, "rate")
			if err != nil {
				return err
			}
			monthly, err := amountFlag(cmd, "monthly")
			if err != nil {
				return err
			}
			var typ *model.LiabilityType
			if raw := strFlag(cmd, "type"); raw != nil {
				t := model.LiabilityType(*raw)
				typ = &t
			}

			if !app.ledger.UpdateLiability(ctx, args[0], ledger.LiabilityUpdate{
				Name:           strFlag(cmd, "name"),
				Type:           typ,
				Amount:         amount,
				InterestRate:   rate,
				MonthlyPayment: monthly,
				DueDate:        strFlag(cmd, "due"),
			}) {
				fmt.Println(cli.WarningStyle.Render("No liability with that id."))
				return nil
			}
			fmt.Println(cli.SuccessStyle.Render("Updated."))
			return nil
		},
	}
	cmd.Flags().String("name", "", "new name")
	cmd.Flags().String("type", "", "new type")
	cmd.Flags().String("amount", "", "new amount owed")
	cmd.Flags().String("rate", "", "new annual interest rate percent")
	cmd.Flags().String("monthly", "", "new monthly payment")
	cmd.Flags().String("due", "", "new due date")
	return cmd
}

func liabilitiesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a liability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			app.ledger.DeleteLiability(ctx, args[0])
			fmt.Println(cli.SuccessStyle.Render("Deleted."))
			return nil
		},
	}
}

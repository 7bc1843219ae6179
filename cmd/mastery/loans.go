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

func loansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loans",
		Short: "Track money you have lent out",
	}
	cmd.AddCommand(loansAddCmd())
	cmd.AddCommand(loansListCmd())
	cmd.AddCommand(loansUpdateCmd())
	cmd.AddCommand(loansDeleteCmd())
	return cmd
}

func loansAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a loan given to someone",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			amount, err := validate.PositiveAmount("amount", mustString(cmd, "amount"))
			if err != nil {
				return err
			}
			repaid, err := validate.NonNegativeAmount("repaid", mustString(cmd, "repaid"))
			if err != nil {
				return err
			}
			rate, err := validate.Rate("rate", mustString(cmd, "rate"))
			if err != nil {
				return err
			}

			l := app.ledger.AddLoanGiven(ctx, model.LoanGiven{
				BorrowerName: mustString(cmd, "borrower"),
				Amount:       amount,
				AmountRepaid: repaid,
				InterestRate: rate,
				LoanDate:     mustString(cmd, "date"),
				DueDate:      mustString(cmd, "due"),
				Status:       model.LoanStatus(mustString(cmd, "status")),
				Notes:        mustString(cmd, "notes"),
			})
			fmt.Printf("%s loan to %s (%s)\n", cli.SuccessStyle.Render("Recorded"), l.BorrowerName, l.ID)
			return nil
		},
	}
	cmd.Flags().String("borrower", "", "who borrowed the money")
	cmd.Flags().String("amount", "", "amount lent")
	cmd.Flags().String("repaid", "0", "amount repaid so far")
	cmd.Flags().String("rate", "0", "annual interest rate percent")
	cmd.Flags().String("date", "", "when the loan was given")
	cmd.Flags().String("due", "", "when repayment is due")
	cmd.Flags().String("status", string(model.LoanActive), "active, repaid, or overdue")
	cmd.Flags().String("notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("borrower")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func loansListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show loans given",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			doc := app.store.Document(ctx)
			fmt.Println(cli.TitleStyle.Render("Loans Given"))
			for _, l := range doc.LoansGiven {
				statusStyle := cli.SubtleStyle
				switch l.Status {
				case model.LoanRepaid:
					statusStyle = cli.SuccessStyle
				case model.LoanOverdue:
					statusStyle = cli.ErrorStyle
				}
				fmt.Printf("%-20s %s repaid of %s  %s  %s\n",
					l.BorrowerName,
					calc.FormatCurrency(l.AmountRepaid, doc.Currency),
					calc.FormatCurrency(l.Amount, doc.Currency),
					statusStyle.Render(string(l.Status)),
					cli.SubtleStyle.Render(l.ID))
			}
			return nil
		},
	}
}

func loansUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a loan given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			amount, err := amountFlag(cmd, "amount")
			if err != nil {
				return err
			}
			repaid, err := amountFlag(cmd, "repaid")
			if err != nil {
				return err
			}
			rate, err := amountFlag(cmd, "rate")
			if err != nil {
				return err
			}
			var status *model.LoanStatus
			if raw := strFlag(cmd, "status"); raw != nil {
				s := model.LoanStatus(*raw)
				status = &s
			}

			if !app.ledger.UpdateLoanGiven(ctx, args[0], ledger.LoanGivenUpdate{
				BorrowerName: strFlag(cmd, "borrower"),
				Amount:       amount,
				AmountRepaid: repaid,
				InterestRate: rate,
				LoanDate:     strFlag(cmd, "date"),
				DueDate:      strFlag(cmd, "due"),
				Status:       status,
				Notes:        strFlag(cmd, "notes"),
			}) {
				fmt.Println(cli.WarningStyle.Render("No loan with that id."))
				return nil
			}
			fmt.Println(cli.SuccessStyle.Render("Updated."))
			return nil
		},
	}
	cmd.Flags().String("borrower", "", "new borrower name")
	cmd.Flags().String("amount", "", "new amount lent")
	cmd.Flags().String("repaid", "", "new amount repaid")
	cmd.Flags().String("rate", "", "new annual interest rate percent")
	cmd.Flags().String("date", "", "new loan date")
	cmd.Flags().String("due", "", "new due date")
	cmd.Flags().String("status", "", "active, repaid, or overdue")
	cmd.Flags().String("notes", "", "new notes")
	return cmd
}

func loansDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a loan given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			app.ledger.DeleteLoanGiven(ctx, args[0])
			fmt.Println(cli.SuccessStyle.Render("Deleted."))
			return nil
		},
	}
}

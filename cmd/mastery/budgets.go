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

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage spending budgets",
	}
	cmd.AddCommand(budgetsAddCmd())
	cmd.AddCommand(budgetsListCmd())
	cmd.AddCommand(budgetsUpdateCmd())
	cmd.AddCommand(budgetsDeleteCmd())
	return cmd
}

func budgetsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a budget for a category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			limit, err := validate.PositiveAmount("limit", mustString(cmd, "limit"))
			if err != nil {
				return err
			}
			period := model.BudgetPeriod(mustString(cmd, "period"))

			b := app.ledger.AddBudget(ctx, model.Budget{
				Category: mustString(cmd, "category"),
				Limit:    limit,
				Period:   period,
			})
			fmt.Printf("%s budget for %s (%s)\n", cli.SuccessStyle.Render("Created"), b.Category, b.ID)
			return nil
		},
	}
	cmd.Flags().String("category", "", "category the budget covers")
	cmd.Flags().String("limit", "", "spending limit for the period")
	cmd.Flags().String("period", string(model.PeriodMonthly), "weekly, monthly, or yearly")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("limit")
	return cmd
}

func budgetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show budgets and how much of each is used",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			doc := app.store.Document(ctx)
			fmt.Println(cli.TitleStyle.Render("Budgets"))
			for _, b := range doc.Budgets {
				used := calc.BudgetUtilization(b) * 100
				style := cli.SuccessStyle
				if used >= 100 {
					style = cli.ErrorStyle
				} else if used >= 80 {
					style = cli.WarningStyle
				}
				fmt.Printf("%-20s %s / %s  %s  %s\n",
					b.Category,
					calc.FormatCurrency(b.Spent, doc.Currency),
					calc.FormatCurrency(b.Limit, doc.Currency),
					style.Render(fmt.Sprintf("%.0f%%", used)),
					cli.SubtleStyle.Render(fmt.Sprintf("%s %s", b.Period, b.ID)))
			}
			return nil
		},
	}
}

func budgetsUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			limit, err := amountFlag(cmd, "limit")
			if err != nil {
				return err
			}
			spent, err := amountFlag(cmd, "spent")
			if err != nil {
				return err
			}
			var period *model.BudgetPeriod
			if raw := strFlag(cmd, "period"); raw != nil {
				p := model.BudgetPeriod(*raw)
				period = &p
			}

			if !app.ledger.UpdateBudget(ctx, args[0], ledger.BudgetUpdate{
				Category: strFlag(cmd, "category"),
				Limit:    limit,
				Spent:    spent,
				Period:   period,
			}) {
				fmt.Println(cli.WarningStyle.Render("No budget with that id."))
				return nil
			}
			fmt.Println(cli.SuccessStyle.Render("Updated."))
			return nil
		},
	}
	cmd.Flags().String("category", "", "new category")
	cmd.Flags().String("limit", "", "new limit")
	cmd.Flags().String("spent", "", "override amount spent this period")
	cmd.Flags().String("period", "", "weekly, monthly, or yearly")
	return cmd
}

func budgetsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			app.ledger.DeleteBudget(ctx, args[0])
			fmt.Println(cli.SuccessStyle.Render("Deleted."))
			return nil
		},
	}
}

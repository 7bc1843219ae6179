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

func savingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "savings",
		Short: "Track savings goals",
	}
	cmd.AddCommand(savingsAddCmd())
	cmd.AddCommand(savingsListCmd())
	cmd.AddCommand(savingsUpdateCmd())
	cmd.AddCommand(savingsDeleteCmd())
	return cmd
}

func savingsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a savings goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			target, err := validate.PositiveAmount("target", mustString(cmd, "target"))
			if err != nil {
				return err
			}
			current, err := validate.NonNegativeAmount("current", mustString(cmd, "current"))
			if err != nil {
				return err
			}

			g := app.ledger.AddSavingsGoal(ctx, model.SavingsGoal{
				Name:          mustString(cmd, "name"),
				TargetAmount:  target,
				CurrentAmount: current,
				Deadline:      mustString(cmd, "deadline"),
				Priority:      model.Priority(mustString(cmd, "priority")),
			})
			fmt.Printf("%s goal %s (%s)\n", cli.SuccessStyle.Render("Created"), g.Name, g.ID)
			return nil
		},
	}
	cmd.Flags().String("name", "", "what you are saving for")
	cmd.Flags().String("target", "", "target amount")
	cmd.Flags().String("current", "0", "amount saved so far")
	cmd.Flags().String("deadline", "", "target date")
	cmd.Flags().String("priority", string(model.PriorityMedium), "low, medium, or high")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func savingsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show savings goals and progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			doc := app.store.Document(ctx)
			fmt.Println(cli.TitleStyle.Render("Savings Goals"))
			for _, g := range doc.SavingsGoals {
				pct := 0.0
				if g.TargetAmount > 0 {
					pct = g.CurrentAmount / g.TargetAmount * 100
				}
				fmt.Printf("%-20s %s / %s  %s  %s\n",
					g.Name,
					cli.IncomeStyle.Render(calc.FormatCurrency(g.CurrentAmount, doc.Currency)),
					calc.FormatCurrency(g.TargetAmount, doc.Currency),
					cli.BoldStyle.Render(fmt.Sprintf("%.0f%%", pct)),
					cli.SubtleStyle.Render(fmt.Sprintf("%s %s", g.Priority, g.ID)))
			}
			return nil
		},
	}
}

func savingsUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			target, err := amountFlag(cmd, "target")
			if err != nil {
				return err
			}
			current, err := amountFlag(cmd, "current")
			if err != nil {
				return err
			}
			var priority *model.Priority
			if raw := strFlag(cmd, "priority"); raw != nil {
				p := model.Priority(*raw)
				priority = &p
			}

			if !app.ledger.UpdateSavingsGoal(ctx, args[0], ledger.SavingsGoalUpdate{
				Name:          strFlag(cmd, "name"),
				TargetAmount:  target,
				CurrentAmount: current,
				Deadline:      strFlag(cmd, "deadline"),
				Priority:      priority,
			}) {
				fmt.Println(cli.WarningStyle.Render("No savings goal with that id."))
				return nil
			}
			fmt.Println(cli.SuccessStyle.Render("Updated."))
			return nil
		},
	}
	cmd.Flags().String("name", "", "new name")
	cmd.Flags().String("target", "", "new target amount")
	cmd.Flags().String("current", "", "new saved amount")
	cmd.Flags().String("deadline", "", "new target date")
	cmd.Flags().String("priority", "", "low, medium, or high")
	return cmd
}

func savingsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			app.ledger.DeleteSavingsGoal(ctx, args[0])
			fmt.Println(cli.SuccessStyle.Render("Deleted."))
			return nil
		},
	}
}

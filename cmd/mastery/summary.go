package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/money-mastery/internal/calc"
	"github.com/Veraticus/money-mastery/internal/cli"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show a financial overview",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			doc := app.store.Document(ctx)
			now := time.Now()

			netWorth := calc.NetWorth(doc)
			income := calc.MonthlyIncome(doc.Transactions)
			expenses := calc.MonthlyExpenses(doc.Transactions)
			rate := calc.SavingsRate(income, expenses) * 100

			fmt.Println(cli.TitleStyle.Render("Financial Summary"))

			fmt.Printf("%-22s %s\n", "Net worth:",
				cli.Amount(calc.FormatCurrency(netWorth, doc.Currency), netWorth < 0))
			fmt.Printf("%-22s %s\n", "Income this month:",
				cli.IncomeStyle.Render(calc.FormatCurrency(income, doc.Currency)))
			fmt.Printf("%-22s %s\n", "Expenses this month:",
				cli.ExpenseStyle.Render(calc.FormatCurrency(expenses, doc.Currency)))

			rateStyle := cli.SuccessStyle
			if rate < 0 {
				rateStyle = cli.ErrorStyle
			} else if rate < 10 {
				rateStyle = cli.WarningStyle
			}
			fmt.Printf("%-22s %s\n", "Savings rate:", rateStyle.Render(fmt.Sprintf("%.1f%%", rate)))

			if len(doc.Budgets) > 0 {
				fmt.Println()
				fmt.Println(cli.BoldStyle.Render("Budgets"))
				for _, b := range doc.Budgets {
					used := calc.BudgetUtilization(b) * 100
					style := cli.SuccessStyle
					if used >= 100 {
						style = cli.ErrorStyle
					} else if used >= 80 {
						style = cli.WarningStyle
					}
					fmt.Printf("  %-18s %s\n", b.Category, style.Render(fmt.Sprintf("%.0f%% used", used)))
				}
			}

			if len(doc.Debts) > 0 {
				fmt.Println()
				fmt.Println(cli.BoldStyle.Render("Debts"))
				for _, d := range doc.Debts {
					fmt.Printf("  %-18s %s  payoff: %s\n",
						d.Name,
						cli.ErrorStyle.Render(calc.FormatCurrency(d.RemainingAmount, doc.Currency)),
						payoffLabel(calc.DebtPayoffMonths(d.RemainingAmount, d.MinimumPayment, d.InterestRate)))
				}
			}

			if upcoming := calc.UpcomingBills(doc.Bills, now); len(upcoming) > 0 {
				fmt.Println()
				fmt.Println(cli.BoldStyle.Render("Due This Week"))
				for _, b := range upcoming {
					fmt.Printf("  %-18s %s in %d days\n",
						b.Name,
						cli.ExpenseStyle.Render(calc.FormatCurrency(b.Amount, doc.Currency)),
						calc.DaysUntilDue(b, now))
				}
			}

			if last := app.store.LastSynced(ctx); !last.IsZero() {
				fmt.Println()
				fmt.Println(cli.SubtleStyle.Render("Last synced " + last.Local().Format("2006-01-02 15:04")))
			}
			return nil
		},
	}
}

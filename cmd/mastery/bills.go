package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/money-mastery/internal/calc"
	"github.com/Veraticus/money-mastery/internal/cli"
	"github.com/Veraticus/money-mastery/internal/ledger"
	"github.com/Veraticus/money-mastery/internal/model"
	"github.com/Veraticus/money-mastery/internal/validate"
)

func billsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bills",
		Short: "Track recurring bills and due dates",
	}
	cmd.AddCommand(billsAddCmd())
	cmd.AddCommand(billsListCmd())
	cmd.AddCommand(billsUpcomingCmd())
	cmd.AddCommand(billsUpdateCmd())
	cmd.AddCommand(billsDeleteCmd())
	return cmd
}

func billsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a recurring bill",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			amount, err := validate.PositiveAmount("amount", mustString(cmd, "amount"))
			if err != nil {
				return err
			}
			reminder, err := validate.Days("reminder", mustString(cmd, "reminder"))
			if err != nil {
				return err
			}
			autopay, _ := cmd.Flags().GetBool("autopay")

			b := app.ledger.AddBill(ctx, model.Bill{
				Name:           mustString(cmd, "name"),
				Amount:         amount,
				Category:       model.BillCategory(mustString(cmd, "category")),
				Frequency:      model.BillFrequency(mustString(cmd, "frequency")),
				NextDueDate:    mustString(cmd, "due"),
				AutoPayEnabled: autopay,
				ReminderDays:   reminder,
				Notes:          mustString(cmd, "notes"),
			})
			fmt.Printf("%s bill %s (%s)\n", cli.SuccessStyle.Render("Recorded"), b.Name, b.ID)
			return nil
		},
	}
	cmd.Flags().String("name", "", "bill name")
	cmd.Flags().String("amount", "", "amount due each cycle")
	cmd.Flags().String("category", string(model.BillOther), "subscription, utility, insurance, rent, loan-payment, or other")
	cmd.Flags().String("frequency", string(model.FrequencyMonthly), "daily, weekly, monthly, quarterly, or yearly")
	cmd.Flags().String("due", "", "next due date")
	cmd.Flags().Bool("autopay", false, "whether the bill pays automatically")
	cmd.Flags().String("reminder", "3", "days before the due date to surface a reminder")
	cmd.Flags().String("notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("due")
	return cmd
}

func billsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all bills",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			doc := app.store.Document(ctx)
			fmt.Println(cli.TitleStyle.Render("Bills"))
			for _, b := range doc.Bills {
				autopay := ""
				if b.AutoPayEnabled {
					autopay = cli.SubtleStyle.Render(" autopay")
				}
				fmt.Printf("%-20s %s  %-9s due %s%s  %s\n",
					b.Name,
					cli.ExpenseStyle.Render(calc.FormatCurrency(b.Amount, doc.Currency)),
					b.Frequency,
					b.NextDueDate,
					autopay,
					cli.SubtleStyle.Render(b.ID))
			}
			return nil
		},
	}
}

func billsUpcomingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upcoming",
		Short: "Show bills due within the next week",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			doc := app.store.Document(ctx)
			upcoming := calc.UpcomingBills(doc.Bills, time.Now())

			fmt.Println(cli.TitleStyle.Render("Upcoming Bills"))
			if len(upcoming) == 0 {
				fmt.Println(cli.SubtleStyle.Render("Nothing due in the next 7 days."))
				return nil
			}
			for _, b := range upcoming {
				days := calc.DaysUntilDue(b, time.Now())
				label := fmt.Sprintf("in %d days", days)
				style := cli.WarningStyle
				switch days {
				case 0:
					label = "due today"
					style = cli.ErrorStyle
				case 1:
					label = "due tomorrow"
				}
				fmt.Printf("%-20s %s  %s\n",
					b.Name,
					cli.ExpenseStyle.Render(calc.FormatCurrency(b.Amount, doc.Currency)),
					style.Render(label))
			}
			return nil
		},
	}
}

func billsUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			amount, err := amountFlag(cmd, "amount")
			if err != nil {
				return err
			}
			var category *model.BillCategory
			if raw := strFlag(cmd, "category"); raw != nil {
				c := model.BillCategory(*raw)
				category = &c
			}
			var frequency *model.BillFrequency
			if raw := strFlag(cmd, "frequency"); raw != nil {
				f := model.BillFrequency(*raw)
				frequency = &f
			}

			if !app.ledger.UpdateBill(ctx, args[0], ledger.BillUpdate{
				Name:           strFlag(cmd, "name"),
				Amount:         amount,
				Category:       category,
				Frequency:      frequency,
				NextDueDate:    strFlag(cmd, "due"),
				AutoPayEnabled: boolFlag(cmd, "autopay"),
				ReminderDays:   intFlag(cmd, "reminder"),
				Notes:          strFlag(cmd, "notes"),
			}) {
				fmt.Println(cli.WarningStyle.Render("No bill with that id."))
				return nil
			}
			fmt.Println(cli.SuccessStyle.Render("Updated."))
			return nil
		},
	}
	cmd.Flags().String("name", "", "new name")
	cmd.Flags().String("amount", "", "new amount")
	cmd.Flags().String("category", "", "new category")
	cmd.Flags().String("frequency", "", "new frequency")
	cmd.Flags().String("due", "", "new next due date")
	cmd.Flags().Bool("autopay", false, "toggle autopay")
	cmd.Flags().Int("reminder", 0, "new reminder days")
	cmd.Flags().String("notes", "", "new notes")
	return cmd
}

func billsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			app.ledger.DeleteBill(ctx, args[0])
			fmt.Println(cli.SuccessStyle.Render("Deleted."))
			return nil
		},
	}
}

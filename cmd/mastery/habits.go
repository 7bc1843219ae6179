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

func habitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habits",
		Short: "Build financial habits",
	}
	cmd.AddCommand(habitsAddCmd())
	cmd.AddCommand(habitsListCmd())
	cmd.AddCommand(habitsToggleCmd())
	cmd.AddCommand(habitsUpdateCmd())
	cmd.AddCommand(habitsDeleteCmd())
	return cmd
}

func habitsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Start tracking a habit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			target, err := validate.Days("target", mustString(cmd, "target"))
			if err != nil {
				return err
			}

			h := app.ledger.AddHabit(ctx, model.Habit{
				Name:        mustString(cmd, "name"),
				Description: mustString(cmd, "description"),
				Category:    model.HabitCategory(mustString(cmd, "category")),
				Frequency:   model.HabitFrequency(mustString(cmd, "frequency")),
				TargetDays:  target,
				Color:       mustString(cmd, "color"),
			})
			fmt.Printf("%s habit %s (%s)\n", cli.SuccessStyle.Render("Tracking"), h.Name, h.ID)
			return nil
		},
	}
	cmd.Flags().String("name", "", "habit name")
	cmd.Flags().String("description", "", "what the habit involves")
	cmd.Flags().String("category", string(model.HabitFinancial), "financial, health, productivity, personal, or other")
	cmd.Flags().String("frequency", string(model.HabitDaily), "daily, weekly, or monthly")
	cmd.Flags().String("target", "0", "target days to build the habit")
	cmd.Flags().String("color", "", "display color")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func habitsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show habits with streaks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			doc := app.store.Document(ctx)
			today := time.Now()
			fmt.Println(cli.TitleStyle.Render("Habits"))
			for _, h := range doc.Habits {
				streak := calc.HabitStreak(h, today)
				streakLabel := cli.SubtleStyle.Render("no streak")
				if streak > 0 {
					streakLabel = cli.SuccessStyle.Render(fmt.Sprintf("%d day streak", streak))
				}
				done := " "
				if h.CompletedOn(today.Format("2006-01-02")) {
					done = cli.SuccessStyle.Render("✓")
				}
				rateLabel := ""
				if rate := calc.CompletionRate(h); rate >= 0 {
					rateLabel = cli.SubtleStyle.Render(fmt.Sprintf(" %d%% of target", rate))
				}
				fmt.Printf("%s %-20s %-12s %s%s  %s\n",
					done, h.Name, h.Category, streakLabel, rateLabel,
					cli.SubtleStyle.Render(h.ID))
			}
			return nil
		},
	}
}

func habitsToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a habit done (or undone) for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			date := mustString(cmd, "date")
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}

			if !app.ledger.ToggleHabitCompletion(ctx, args[0], date) {
				fmt.Println(cli.WarningStyle.Render("No habit with that id."))
				return nil
			}
			fmt.Printf("%s completion for %s\n", cli.SuccessStyle.Render("Toggled"), date)
			return nil
		},
	}
	cmd.Flags().String("date", "", "day to toggle, YYYY-MM-DD (default: today)")
	return cmd
}

func habitsUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			var category *model.HabitCategory
			if raw := strFlag(cmd, "category"); raw != nil {
				c := model.HabitCategory(*raw)
				category = &c
			}
			var frequency *model.HabitFrequency
			if raw := strFlag(cmd, "frequency"); raw != nil {
				f := model.HabitFrequency(*raw)
				frequency = &f
			}

			if !app.ledger.UpdateHabit(ctx, args[0], ledger.HabitUpdate{
				Name:        strFlag(cmd, "name"),
				Description: strFlag(cmd, "description"),
				Category:    category,
				Frequency:   frequency,
				TargetDays:  intFlag(cmd, "target"),
				Color:       strFlag(cmd, "color"),
			}) {
				fmt.Println(cli.WarningStyle.Render("No habit with that id."))
				return nil
			}
			fmt.Println(cli.SuccessStyle.Render("Updated."))
			return nil
		},
	}
	cmd.Flags().String("name", "", "new name")
	cmd.Flags().String("description", "", "new description")
	cmd.Flags().String("category", "", "new category")
	cmd.Flags().String("frequency", "", "new frequency")
	cmd.Flags().Int("target", 0, "new target days")
	cmd.Flags().String("color", "", "new display color")
	return cmd
}

func habitsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			app.ledger.DeleteHabit(ctx, args[0])
			fmt.Println(cli.SuccessStyle.Render("Deleted."))
			return nil
		},
	}
}

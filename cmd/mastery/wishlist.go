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

func wishlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Plan future purchases",
	}
	cmd.AddCommand(wishlistAddCmd())
	cmd.AddCommand(wishlistListCmd())
	cmd.AddCommand(wishlistUpdateCmd())
	cmd.AddCommand(wishlistDeleteCmd())
	return cmd
}

func wishlistAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to the wishlist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			price, err := validate.PositiveAmount("price", mustString(cmd, "price"))
			if err != nil {
				return err
			}
			saved, err := validate.NonNegativeAmount("saved", mustString(cmd, "saved"))
			if err != nil {
				return err
			}

			w := app.ledger.AddWishlistItem(ctx, model.WishlistItem{
				Name:        mustString(cmd, "name"),
				Price:       price,
				Priority:    model.Priority(mustString(cmd, "priority")),
				Category:    model.WishlistCategory(mustString(cmd, "category")),
				URL:         mustString(cmd, "url"),
				Notes:       mustString(cmd, "notes"),
				SavedAmount: saved,
				TargetDate:  mustString(cmd, "target-date"),
			})
			fmt.Printf("%s %s to wishlist (%s)\n", cli.SuccessStyle.Render("Added"), w.Name, w.ID)
			return nil
		},
	}
	cmd.Flags().String("name", "", "item name")
	cmd.Flags().String("price", "", "item price")
	cmd.Flags().String("priority", string(model.PriorityMedium), "low, medium, or high")
	cmd.Flags().String("category", string(model.WishOther), "electronics, clothing, travel, home, entertainment, or other")
	cmd.Flags().String("url", "", "product link")
	cmd.Flags().String("notes", "", "free-form notes")
	cmd.Flags().String("saved", "0", "amount set aside so far")
	cmd.Flags().String("target-date", "", "when you want to buy it")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func wishlistListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show wishlist items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			doc := app.store.Document(ctx)
			fmt.Println(cli.TitleStyle.Render("Wishlist"))
			for _, w := range doc.Wishlist {
				bought := " "
				if w.IsPurchased {
					bought = cli.SuccessStyle.Render("✓")
				}
				fmt.Printf("%s %-20s %s (saved %s)  %s  %s\n",
					bought,
					w.Name,
					calc.FormatCurrency(w.Price, doc.Currency),
					cli.IncomeStyle.Render(calc.FormatCurrency(w.SavedAmount, doc.Currency)),
					cli.SubtleStyle.Render(string(w.Priority)),
					cli.SubtleStyle.Render(w.ID))
			}
			return nil
		},
	}
}

func wishlistUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a wishlist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			price, err := amountFlag(cmd, "price")
			if err != nil {
				return err
			}
			saved, err := amountFlag(cmd, "saved")
			if err != nil {
				return err
			}
			var priority *model.Priority
			if raw := strFlag(cmd, "priority"); raw != nil {
				p := model.Priority(*raw)
				priority = &p
			}
			var category *model.WishlistCategory
			if raw := strFlag(cmd, "category"); raw != nil {
				c := model.WishlistCategory(*raw)
				category = &c
			}

			if !app.ledger.UpdateWishlistItem(ctx, args[0], ledger.WishlistItemUpdate{
				Name:        strFlag(cmd, "name"),
				Price:       price,
				Priority:    priority,
				Category:    category,
				URL:         strFlag(cmd, "url"),
				Notes:       strFlag(cmd, "notes"),
				SavedAmount: saved,
				TargetDate:  strFlag(cmd, "target-date"),
				IsPurchased: boolFlag(cmd, "purchased"),
			}) {
				fmt.Println(cli.WarningStyle.Render("No wishlist item with that id."))
				return nil
			}
			fmt.Println(cli.SuccessStyle.Render("Updated."))
			return nil
		},
	}
	cmd.Flags().String("name", "", "new name")
	cmd.Flags().String("price", "", "new price")
	cmd.Flags().String("priority", "", "low, medium, or high")
	cmd.Flags().String("category", "", "new category")
	cmd.Flags().String("url", "", "new product link")
	cmd.Flags().String("notes", "", "new notes")
	cmd.Flags().String("saved", "", "new saved amount")
	cmd.Flags().String("target-date", "", "new target date")
	cmd.Flags().Bool("purchased", false, "mark purchased or not")
	return cmd
}

func wishlistDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a wishlist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			app.ledger.DeleteWishlistItem(ctx, args[0])
			fmt.Println(cli.SuccessStyle.Render("Deleted."))
			return nil
		},
	}
}

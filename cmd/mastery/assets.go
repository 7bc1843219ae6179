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

func assetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Track things you own",
	}
	cmd.AddCommand(assetsAddCmd())
	cmd.AddCommand(assetsListCmd())
	cmd.AddCommand(assetsUpdateCmd())
	cmd.AddCommand(assetsDeleteCmd())
	return cmd
}

func assetsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an asset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			value, err := validate.NonNegativeAmount("value", mustString(cmd, "value"))
			if err != nil {
				return err
			}

			a := app.ledger.AddAsset(ctx, model.Asset{
				Name:         mustString(cmd, "name"),
				Type:         model.AssetType(mustString(cmd, "type")),
				Value:        value,
				PurchaseDate: mustString(cmd, "purchased"),
				Description:  mustString(cmd, "description"),
			})
			fmt.Printf("%s asset %s (%s)\n", cli.SuccessStyle.Render("Recorded"), a.Name, a.ID)
			return nil
		},
	}
	cmd.Flags().String("name", "", "asset name")
	cmd.Flags().String("type", string(model.AssetOther), "property, vehicle, investment, jewelry, electronics, or other")
	cmd.Flags().String("value", "", "current value")
	cmd.Flags().String("purchased", "", "purchase date")
	cmd.Flags().String("description", "", "notes")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func assetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show assets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			doc := app.store.Document(ctx)
			fmt.Println(cli.TitleStyle.Render("Assets"))
			var total float64
			for _, a := range doc.Assets {
				total += a.Value
				fmt.Printf("%-20s %-12s %s  %s\n",
					a.Name,
					a.Type,
					cli.IncomeStyle.Render(calc.FormatCurrency(a.Value, doc.Currency)),
					cli.SubtleStyle.Render(a.ID))
			}
			fmt.Printf("\n%s %s\n", cli.BoldStyle.Render("Total:"), calc.FormatCurrency(total, doc.Currency))
			return nil
		},
	}
}

func assetsUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			value, err := amountFlag(cmd, "value")
			if err != nil {
				return err
			}
			var typ *model.AssetType
			if raw := strFlag(cmd, "type"); raw != nil {
				t := model.AssetType(*raw)
				typ = &t
			}

			if !app.ledger.UpdateAsset(ctx, args[0], ledger.AssetUpdate{
				Name:         strFlag(cmd, "name"),
				Type:         typ,
				Value:        value,
				PurchaseDate: strFlag(cmd, "purchased"),
				Description:  strFlag(cmd, "description"),
			}) {
				fmt.Println(cli.WarningStyle.Render("No asset with that id."))
				return nil
			}
			fmt.Println(cli.SuccessStyle.Render("Updated."))
			return nil
		},
	}
	cmd.Flags().String("name", "", "new name")
	cmd.Flags().String("type", "", "new type")
	cmd.Flags().String("value", "", "new value")
	cmd.Flags().String("purchased", "", "new purchase date")
	cmd.Flags().String("description", "", "new notes")
	return cmd
}

func assetsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			app.ledger.DeleteAsset(ctx, args[0])
			fmt.Println(cli.SuccessStyle.Render("Deleted."))
			return nil
		},
	}
}

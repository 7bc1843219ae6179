package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Veraticus/money-mastery/internal/calc"
	"github.com/Veraticus/money-mastery/internal/cli"
	"github.com/Veraticus/money-mastery/internal/model"
	"github.com/Veraticus/money-mastery/internal/ofximport"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import transactions from OFX or QFX (Quicken) files exported from
your bank.

Examples:
  # Import a single file
  mastery import ~/Downloads/statement_jan.qfx

  # Import everything a bank exported
  mastery import ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}
	cmd.Flags().BoolP("dry-run", "d", false, "preview import without saving")
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	// Expand globs and collect all files
	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}
	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	app := initApp(ctx)
	defer app.Close(ctx)

	parser := ofximport.NewParser()
	var parsed []model.Transaction

	for _, filePath := range allFiles {
		f, err := os.Open(filePath)
		if err != nil {
			slog.Error("Failed to open file", "file", filePath, "error", err)
			continue
		}
		transactions, err := parser.ParseFile(f)
		_ = f.Close()
		if err != nil {
			slog.Error("Failed to parse OFX file", "file", filePath, "error", err)
			continue
		}
		if len(transactions) == 0 {
			slog.Warn("No transactions found in file", "file", filepath.Base(filePath))
			continue
		}
		parsed = append(parsed, transactions...)
	}

	if len(parsed) == 0 {
		slog.Warn("No transactions found in any file")
		return nil
	}

	currency := app.store.Currency(ctx)

	if dryRun {
		fmt.Println(cli.TitleStyle.Render("Import Preview"))
		for _, t := range parsed {
			fmt.Printf("%s  %-30s %-15s %s\n",
				t.Date[:min(10, len(t.Date))],
				t.Description,
				t.Category,
				cli.Amount(calc.FormatCurrency(t.Amount, currency), t.Type == model.TypeExpense))
		}
		fmt.Printf("\n%d transactions would be imported. Re-run without --dry-run to save.\n", len(parsed))
		return nil
	}

	bar := progressbar.NewOptions(len(parsed),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Importing transactions...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	for _, t := range parsed {
		app.ledger.AddTransaction(ctx, t)
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Println()

	fmt.Printf("%s %d transactions from %d files\n",
		cli.SuccessStyle.Render("Imported"), len(parsed), len(allFiles))
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/money-mastery/internal/cli"
	"github.com/Veraticus/money-mastery/internal/common"
	"github.com/Veraticus/money-mastery/internal/storage"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the cloud backup session",
	}
	cmd.AddCommand(authSignInCmd())
	cmd.AddCommand(authSignUpCmd())
	cmd.AddCommand(authSignOutCmd())
	cmd.AddCommand(authStatusCmd())
	return cmd
}

func authSignInCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign-in",
		Short: "Sign in to the cloud backup",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			if app.remote == nil {
				return common.NewUserError("Cloud sync is not configured. Set remote.url and remote.anon_key.", common.ErrNotConfigured)
			}

			sess, err := app.remote.SignIn(ctx, mustString(cmd, "email"), mustString(cmd, "password"))
			if err != nil {
				return common.NewUserError("Sign in failed", err)
			}
			if err := app.store.SetSession(ctx, storage.Session{
				UserID:      sess.UserID,
				Email:       sess.Email,
				AccessToken: sess.AccessToken,
			}); err != nil {
				return fmt.Errorf("failed to persist session: %w", err)
			}

			fmt.Printf("%s as %s\n", cli.SuccessStyle.Render("Signed in"), sess.Email)

			// Best effort: reconcile with the cloud copy right away.
			if err := app.coordinator.Sync(ctx); err != nil {
				fmt.Println(cli.WarningStyle.Render("Initial sync failed; run `mastery sync` to retry."))
			}
			return nil
		},
	}
	cmd.Flags().String("email", "", "account email")
	cmd.Flags().String("password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func authSignUpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign-up",
		Short: "Create a cloud backup account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			if app.remote == nil {
				return common.NewUserError("Cloud sync is not configured. Set remote.url and remote.anon_key.", common.ErrNotConfigured)
			}

			sess, err := app.remote.SignUp(ctx, mustString(cmd, "email"), mustString(cmd, "password"))
			if err != nil {
				return common.NewUserError("Sign up failed", err)
			}

			// Some deployments require email confirmation before
			// issuing a token; only persist complete sessions.
			if sess.AccessToken != "" {
				if err := app.store.SetSession(ctx, storage.Session{
					UserID:      sess.UserID,
					Email:       sess.Email,
					AccessToken: sess.AccessToken,
				}); err != nil {
					return fmt.Errorf("failed to persist session: %w", err)
				}
				fmt.Printf("%s and signed in as %s\n", cli.SuccessStyle.Render("Account created"), sess.Email)
				return nil
			}

			fmt.Println(cli.SuccessStyle.Render("Account created.") + " Check your email to confirm, then sign in.")
			return nil
		},
	}
	cmd.Flags().String("email", "", "account email")
	cmd.Flags().String("password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func authSignOutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign-out",
		Short: "Forget the local session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			if err := app.store.ClearSession(ctx); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render("Signed out.") + " Local data is untouched.")
			return nil
		},
	}
}

func authStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show who is signed in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			if app.remote == nil {
				fmt.Println(cli.SubtleStyle.Render("Cloud sync is not configured."))
				return nil
			}
			sess := app.store.Session(ctx)
			if sess == nil {
				fmt.Println(cli.SubtleStyle.Render("Not signed in."))
				return nil
			}
			fmt.Printf("Signed in as %s\n", cli.BoldStyle.Render(sess.Email))
			if last := app.store.LastSynced(ctx); !last.IsZero() {
				fmt.Println(cli.SubtleStyle.Render("Last synced " + last.Local().Format("2006-01-02 15:04")))
			}
			return nil
		},
	}
}

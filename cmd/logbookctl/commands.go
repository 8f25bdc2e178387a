package main

import (
	"fmt"
	"os"

	"go-logbook/internal/app"
	"go-logbook/internal/config"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "logbookctl",
		Short:         "Operator tasks for the compliance logbook",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(
		newCreateSuperuserCmd(),
		newRestoreUserCmd(),
		newReconcileLedgerCmd(),
	)
	return root
}

// withAdmin loads configuration, opens the admin facade and closes it
// after fn returns.
func withAdmin(cmd *cobra.Command, fn func(*app.Admin) error) error {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}
	admin, err := app.OpenAdmin(cfg)
	if err != nil {
		return err
	}
	defer admin.Close()
	return fn(admin)
}

func newCreateSuperuserCmd() *cobra.Command {
	var email, name, password string

	cmd := &cobra.Command{
		Use:   "create-superuser",
		Short: "Create a super admin account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = os.Getenv("LOGBOOK_SUPERUSER_PASSWORD")
			}
			if password == "" {
				return fmt.Errorf("--password or LOGBOOK_SUPERUSER_PASSWORD is required")
			}
			return withAdmin(cmd, func(a *app.Admin) error {
				if err := a.CreateSuperuser(cmd.Context(), email, name, password); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "superuser %s created\n", email)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&password, "password", "", "initial password")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newRestoreUserCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "restore-user",
		Short: "Reactivate a soft-deleted account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withAdmin(cmd, func(a *app.Admin) error {
				if err := a.RestoreUser(cmd.Context(), email); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "user %s restored\n", email)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email of the deleted account")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newReconcileLedgerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile-ledger",
		Short: "Backfill missing reports and drop orphaned ones",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withAdmin(cmd, func(a *app.Admin) error {
				res, err := a.ReconcileLedger(cmd.Context())
				fmt.Fprintf(cmd.OutOrStdout(), "recorded=%d removed=%d\n", res.Recorded, res.Removed)
				return err
			})
		},
	}
}

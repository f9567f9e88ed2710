package main

import (
	"fmt"

	"workorders/internal/adapters/out/postgres/userdir"
	"workorders/internal/adapters/out/postgres/workorderrepo"

	"github.com/spf13/cobra"
)

func newMigrateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the work_orders and users tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := ctx.database()
			if err != nil {
				return err
			}
			if err := db.WithContext(cmd.Context()).AutoMigrate(&workorderrepo.WorkOrderDTO{}, &userdir.UserDTO{}); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
			return nil
		},
	}
}

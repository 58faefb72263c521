package main

import (
	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables and indexes if they do not exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			st, err := openStore(ctx, a.cfg)
			if err != nil {
				a.log.Error().Err(err).Msg("db connection failed")
				return err
			}
			defer st.Close()

			if err := st.migrate(ctx); err != nil {
				a.log.Error().Err(err).Msg("migration failed")
				return err
			}
			a.log.Info().Msg("schema up to date")
			return nil
		},
	}
}

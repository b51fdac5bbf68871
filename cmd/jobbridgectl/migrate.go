package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"jobbridge/internal/database/migration"
	"jobbridge/migrations"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withSession(func(ctx context.Context, s *session) error {
			if err := migrationRunner(s).Run(ctx, s.db.SQLDB()); err != nil {
				s.logger.Error("migration failed", zap.Error(err))
				return err
			}
			s.logger.Info("schema is up to date")
			return nil
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List known migrations and when they were applied",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withSession(func(ctx context.Context, s *session) error {
			statuses, err := migrationRunner(s).Status(ctx, s.db.SQLDB())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "VERSION\tNAME\tAPPLIED")
			for _, st := range statuses {
				applied := "pending"
				if st.Applied() {
					applied = st.AppliedAt.Local().Format(time.DateTime)
				}
				if st.Drifted {
					applied += " (edited since)"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", st.Version, st.Name, applied)
			}
			return w.Flush()
		})
	},
}

func migrationRunner(s *session) migration.Runner {
	return migration.Runner{FS: migrations.FS, Logger: s.logger.Named("migration")}
}

func init() {
	migrateCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}

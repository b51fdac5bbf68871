package main

import (
	"context"

	"jobbridge/internal/database/seeder"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the skill catalogue with the default labels",
	RunE: func(cmd *cobra.Command, _ []string) error {
		demo, _ := cmd.Flags().GetBool("demo")
		return withSession(func(ctx context.Context, s *session) error {
			r := seeder.NewRunner(s.logger.Named("seed"), demo)
			if err := r.Run(ctx, s.db); err != nil {
				s.logger.Error("seeding failed", zap.Error(err))
				return err
			}
			s.logger.Info("seeding finished", zap.Int("seeders", len(r.Seeders)))
			return nil
		})
	},
}

func init() {
	seedCmd.Flags().Bool("demo", false, "also load sample providers, jobs and beneficiaries")
	rootCmd.AddCommand(seedCmd)
}

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"jobbridge/internal/config"
	"jobbridge/internal/database"
	dbpostgres "jobbridge/internal/database/postgres"
	"jobbridge/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const app = "jobbridgectl"

var rootCmd = &cobra.Command{
	Use:           app,
	Short:         "jobbridgectl manages the JobBridge database and operator accounts",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("env-file", "JOBBRIDGE_ENV_FILE"); err != nil {
		log.Fatalf("binding JOBBRIDGE_ENV_FILE environment variable: %v", err)
	}

	rootCmd.PersistentFlags().String("env-file", "", "an env file to load before reading configuration (default is .env in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().Duration("timeout", 2*time.Minute, "overall timeout for the command")

	_ = viper.BindPFlag("env-file", rootCmd.PersistentFlags().Lookup("env-file"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

// session is what every subcommand needs: configuration, a logger and an open
// database.
type session struct {
	cfg    config.Config
	logger *zap.Logger
	db     database.DB
}

func openSession(ctx context.Context) (*session, error) {
	if f := viper.GetString("env-file"); f != "" {
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	zl, err := logger.New(viper.GetBool("json") || cfg.App.LogJSON, viper.GetBool("debug") || cfg.App.LogDebug)
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}

	db, err := dbpostgres.Connect(ctx, cfg.Database, zl.Named("db"))
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return &session{cfg: cfg, logger: zl, db: db}, nil
}

func (s *session) Close() {
	if s == nil {
		return
	}
	_ = s.db.Close()
	_ = s.logger.Sync()
}

// withSession runs fn with an open session bounded by --timeout.
func withSession(fn func(ctx context.Context, s *session) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), viper.GetDuration("timeout"))
	defer cancel()

	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	return fn(ctx, s)
}

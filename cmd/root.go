package cmd

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kilianp07/dutylog/app"
	"github.com/kilianp07/dutylog/config"
	"github.com/kilianp07/dutylog/infra/logger"
	"github.com/kilianp07/dutylog/infra/plan"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:               "dutylog",
	Short:             "Driver's daily log charts and PDF export",
	SilenceUsage:      true,
	PersistentPreRunE: loadDotEnv,
}

func loadDotEnv(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil {
		logger.New("cli").Debugf("no .env file found, using environment variables")
	}
	return nil
}

// commandContext returns the command's context, or a background context
// when the command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "dutylog.yaml", "configuration file (missing file means defaults)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// openSession loads the configuration and the plan at path ("-" for stdin).
func openSession(cmd *cobra.Command, path string) (*app.Session, *config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return nil, nil, err
	}
	trip, err := plan.Load(path, cmd.InOrStdin())
	if err != nil {
		return nil, nil, err
	}
	s, err := app.New(cfg, trip)
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}

func closeSession(cmd *cobra.Command, s *app.Session) {
	if err := s.Close(); err != nil {
		if _, ferr := fmt.Fprintf(cmd.ErrOrStderr(), "error while closing session: %v\n", err); ferr != nil {
			fmt.Println("failed to write to stderr:", ferr)
		}
	}
}

package cmd

import (
	"fmt"

	"object-manager/core/config"
	"object-manager/core/logger"
	"object-manager/feature/objects"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// provisionCmd represents the provision command
var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Ensure the storage bucket exists",
	Long:  `Checks that the configured bucket exists and creates it if absent. Run once before first use.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		svc, err := objects.NewServiceFromConfig(cfg.Storage, logg)
		if err != nil {
			return err
		}

		ready, err := svc.Provision(cmd.Context())
		if err != nil {
			return err
		}
		logg.Info("Bucket provisioned", zap.String("bucket", cfg.Storage.Bucket), zap.Bool("ready", ready))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(provisionCmd)
}

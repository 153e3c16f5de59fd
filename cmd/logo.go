package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rschubkegel/rschubkegel.com/internal/flags"
	"github.com/rschubkegel/rschubkegel.com/internal/logger"
	"github.com/rschubkegel/rschubkegel.com/internal/storage"
)

var logoPressedValue bool

var logoCmd = &cobra.Command{
	Use:   "logo",
	Short: "Reads or sets the persisted logo-pressed flag",
}

var logoPressCmd = &cobra.Command{
	Use:   "press",
	Short: "Marks the logo as pressed (use --value=false to reset)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		area, err := storage.OpenSQLite(ctx, appConfig.StorePath, appConfig.Origin, appConfig.StorageQuota, logger.Log)
		if err != nil {
			return err
		}
		defer area.Close()

		target := storage.NewTarget()
		target.AddListener(func(ev storage.Event) {
			logger.Sugar.Infow("storage event", "key", ev.Key, "newValue", *ev.NewValue, "origin", appConfig.Origin)
		})

		if err := flags.SetLogoPressed(ctx, area, target, logoPressedValue); err != nil {
			return fmt.Errorf("failed to set %s: %w", flags.LogoPressKey, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%t\n", flags.LogoPressKey, logoPressedValue)
		return nil
	},
}

var logoStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Prints whether the logo has been pressed",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		area, err := storage.OpenSQLite(ctx, appConfig.StorePath, appConfig.Origin, appConfig.StorageQuota, logger.Log)
		if err != nil {
			return err
		}
		defer area.Close()

		pressed, err := flags.LogoPressed(ctx, area)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%t\n", flags.LogoPressKey, pressed)
		return nil
	},
}

func init() {
	logoPressCmd.Flags().BoolVar(&logoPressedValue, "value", true, "Value to store")
	logoCmd.AddCommand(logoPressCmd, logoStatusCmd)
	rootCmd.AddCommand(logoCmd)
}

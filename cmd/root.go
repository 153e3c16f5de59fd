package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rschubkegel/rschubkegel.com/internal/config"
	"github.com/rschubkegel/rschubkegel.com/internal/logger"
	"github.com/rschubkegel/rschubkegel.com/internal/storage"
)

var cfgFile string
var appConfig config.Config

var rootCmd = &cobra.Command{
	Use:   "site",
	Short: "Content tooling for rschubkegel.com",
	Long: `site validates the blog and slides content collections against their
schemas and manages the small preferences the site persists in storage.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute() {
	defer func() { _ = logger.Log.Sync() }()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().String("content-dir", "", "content collections directory")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
}

func initializeConfig(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()

	v.SetDefault("contentDir", "src/content")
	v.SetDefault("storePath", ".site/storage.db")
	v.SetDefault("origin", "http://localhost:4321")
	v.SetDefault("storageQuota", storage.DefaultQuota)
	v.SetDefault("logLevel", "info")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("SITE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.BindPFlag("contentDir", cmd.Root().PersistentFlags().Lookup("content-dir")); err != nil {
		return err
	}
	if err := v.BindPFlag("logLevel", cmd.Root().PersistentFlags().Lookup("log-level")); err != nil {
		return err
	}

	configUsed := ""
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configUsed = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	logger.Init(appConfig.LogLevel)
	if configUsed != "" {
		logger.Sugar.Debugw("using config file", "path", configUsed)
	}
	return nil
}

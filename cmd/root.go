package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"github.com/flightdesk/config"
	"github.com/flightdesk/logger"
)

var (
	cfgfile string
	envfile string

	rootCmd = &cobra.Command{
		Use:   "flightdesk",
		Short: "Flight tracking chat assistant backed by an LLM with aviation tools",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgfile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&envfile, "env-file", ".env", "dotenv file loaded before reading the environment")
}

func initConfig() error {
	// variables already present in the environment win over the dotenv file
	if err := gotenv.Load(envfile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	config.SetDefaults(viper.GetViper())
	if cfgfile != "" {
		viper.SetConfigFile(cfgfile)
		if err := viper.ReadInConfig(); err != nil {
			return err
		}
		logger.NewLogger("Cmd", uuid.NewString()).Info("using config file", "path", viper.ConfigFileUsed())
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.NewLogger("Cmd", uuid.NewString()).Error("command failed", "error", err)
		os.Exit(1)
	}
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/flightdesk/auth"
)

var tokenCmd = &cobra.Command{
	Use:   "token [subject]",
	Short: "mint a bearer token for the configured FLIGHTDESK_JWT_SECRET",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		secret := viper.GetString("auth.jwt_secret")
		if secret == "" {
			return errors.New("FLIGHTDESK_JWT_SECRET is not set")
		}
		subject := uuid.NewString()
		if len(args) == 1 {
			subject = args[0]
		}
		signed, err := auth.NewTWithSecret([]byte(secret)).Create(subject)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), signed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}

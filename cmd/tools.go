package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/flightdesk/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "print the tool schemas advertised to the model",
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(tools.Definitions())
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/flightdesk/types"
)

var (
	clientServerURL string
	clientToken     string

	clientCmd = &cobra.Command{
		Use:   "client [message]",
		Short: "send a message to a running chat server",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runClientCmd,
	}
)

func init() {
	clientCmd.Flags().StringVar(&clientServerURL, "server", "http://localhost:5000", "chat server base URL")
	clientCmd.Flags().StringVar(&clientToken, "token", "", "bearer token when the server requires one")
	rootCmd.AddCommand(clientCmd)
}

func runClientCmd(cmd *cobra.Command, args []string) error {
	body, err := json.Marshal(types.ChatRequest{Message: strings.Join(args, " ")})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost,
		strings.TrimRight(clientServerURL, "/")+"/chat", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if clientToken != "" {
		req.Header.Set("Authorization", "Bearer "+clientToken)
	}

	httpClient := &http.Client{Timeout: time.Second * 150}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e types.Error
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error != "" {
			return fmt.Errorf("server returned %s: %s", resp.Status, e.Error)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}

	var out types.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("invalid response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out.Response)
	return nil
}

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/flightdesk/auth"
	"github.com/flightdesk/aviation"
	"github.com/flightdesk/config"
	"github.com/flightdesk/models"
	"github.com/flightdesk/orchestrator"
	"github.com/flightdesk/server"
	"github.com/flightdesk/tools"
)

var (
	serverCmd = &cobra.Command{
		Use:   "serve",
		Short: "start the chat server",
		RunE:  runServerCmd,
	}
)

func init() {
	serverCmd.Flags().String("addr", "", "listen address (overrides server.addr)")
	viper.BindPFlag("server.addr", serverCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serverCmd)
}

// app holds the components wired from one configuration.
type app struct {
	cfg      *config.Config
	registry *tools.Registry
	provider *models.BreakerProvider
}

func newApp(cfg *config.Config) (*app, error) {
	var data tools.FlightData
	if cfg.Aviation.Live() {
		data = aviation.NewClient(cfg.Aviation)
	}
	registry, err := tools.NewRegistry(data, nil)
	if err != nil {
		return nil, err
	}
	provider := models.NewBreakerProvider(models.NewOpenAIClient(cfg.LLM), cfg.LLM.Breaker)
	return &app{cfg: cfg, registry: registry, provider: provider}, nil
}

func runServerCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	deps := server.Deps{
		Responder: orchestrator.New(a.provider, a.registry),
		DemoMode:  a.registry.DemoMode(),
		LLMState:  a.provider.State,
	}
	if cfg.Auth.Enabled() {
		deps.Auth = auth.NewTWithSecret([]byte(cfg.Auth.JWTSecret))
	}

	s := server.NewServer(server.ServerConfigs(cfg.Server), deps)
	aviationMode := "live"
	if a.registry.DemoMode() {
		aviationMode = "demo"
	}
	s.Log().Info("flightdesk configured",
		"llm", a.provider.Name(),
		"aviation", aviationMode,
		"auth", cfg.Auth.Enabled(),
		"addr", s.Svr.Addr,
	)
	return s.Run()
}

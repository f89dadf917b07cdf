package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/angelofallars/hyperinvoice/app"
	"github.com/angelofallars/hyperinvoice/internal/render"
	"github.com/angelofallars/hyperinvoice/internal/service"
	"github.com/angelofallars/hyperinvoice/internal/session"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the invoice form over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("host") {
			cfg.Host, _ = cmd.Flags().GetString("host")
		}
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetUint("port")
		}

		logger := cfg.Logger(os.Stderr)

		svcInvoice := service.NewInvoice(logger, render.New())
		forms := session.NewStore(logger,
			session.WithTTL(cfg.SessionTTL),
			session.WithCountUp(cfg.CountUpDuration, cfg.CountUpInterval),
		)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return app.New(logger, svcInvoice, forms).
			WithHost(cfg.Host).
			WithPort(cfg.Port).
			Serve(ctx)
	},
}

func init() {
	serveCmd.Flags().String("host", "", "interface to listen on (overrides HYPERINVOICE_HOST)")
	serveCmd.Flags().Uint("port", 0, "port to listen on (overrides HYPERINVOICE_PORT)")
	RootCmd.AddCommand(serveCmd)
}

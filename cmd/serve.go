package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hance08/bankbook/internal/app"
	"github.com/hance08/bankbook/internal/server"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type serveFlags struct {
	Addr string
}

func NewServeCmd(a *app.App) *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the accounts over a local HTTP API",
		Long: `Start a JSON HTTP API on the configured address (server.addr).
Amounts in requests and responses are in minor units (cents).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := flags.Addr
			if addr == "" {
				addr = a.Config.Server.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, server.New(addr, a.Ledger, a.Log))
		},
	}

	cmd.Flags().StringVar(&flags.Addr, "addr", "", "Listen address (overrides server.addr)")

	return cmd
}

func runServer(ctx context.Context, srv *server.Server) error {
	pterm.Info.Printf("Listening on http://%s (Ctrl+C to stop)\n", srv.Addr())

	if err := srv.Run(ctx); err != nil {
		return err
	}

	pterm.Success.Println("Server stopped")
	return nil
}

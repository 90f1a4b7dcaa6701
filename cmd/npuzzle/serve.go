package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/npuzzle/internal/config"
	"github.com/pdrpinto/npuzzle/internal/httpapi"
	"github.com/pdrpinto/npuzzle/internal/obslog"
	"github.com/pdrpinto/npuzzle/internal/sharedstate"
)

func newServeCmd() *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP/WebSocket puzzle server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if listenAddr != "" {
				cfg.ListenAddr = listenAddr
			}

			var store sharedstate.Store
			if cfg.RedisAddr != "" {
				store = sharedstate.NewRedis(cfg.RedisAddr, cfg.RedisDB)
			} else {
				store = sharedstate.NewLocal()
			}

			server := httpapi.NewServer(store, cfg)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			obslog.For("serve").Info().Str("addr", cfg.ListenAddr).Msg("listening")
			return server.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&listenAddr, "listen", "", "override the config's listen address")
	return cmd
}

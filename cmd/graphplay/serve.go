package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphplay/server"
)

func newServeCommand(g *globals) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve workspaces over HTTP and websockets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *g.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}

			return server.New(&cfg, g.log).ListenAndServe(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

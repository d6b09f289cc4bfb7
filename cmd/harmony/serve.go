package main

import (
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := NewServer(a.cfg)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}
}

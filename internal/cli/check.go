package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"ads-firewall/internal/adapter/meta"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the access token and ad account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, closer, err := a.load(true)
			if err != nil {
				return err
			}
			defer closer.Close()

			client := meta.New(cfg.Meta, log)
			info, err := client.Ping(cmd.Context(), cfg.Meta.AdAccountID)
			if err != nil {
				log.Error("connection check failed", slog.Any("error", err))
				return err
			}
			fmt.Fprintf(a.stdout, "connected to %s (%s)\n", info.ID, info.Name)
			return nil
		},
	}
}

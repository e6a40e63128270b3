package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newScanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Run a single scan cycle and print its report as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, closer, err := a.load(true)
			if err != nil {
				return err
			}
			defer closer.Close()

			st, err := openStorage(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer st.Close()

			scanner, _ := newScanner(cfg, st, log)
			rep, err := scanner.RunCycle(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(a.stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		},
	}
}

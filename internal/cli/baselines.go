package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ads-firewall/internal/db"
)

func newBaselinesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "baselines",
		Short: "Manage stored baselines",
	}
	cmd.AddCommand(newBaselinesSeedCmd(a))
	return cmd
}

func newBaselinesSeedCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed --file baselines.yaml",
		Short: "Import baselines from a YAML file",
		Long: `Import baselines so new deployments do not start cold. Existing values for
the same metric and campaign are replaced.

Example file:
  baselines:
    - metric: daily_spend
      resource_id: "120200000000001"
      value: 150`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				return errors.New("--file is required")
			}
			cfg, log, closer, err := a.load(false)
			if err != nil {
				return err
			}
			defer closer.Close()

			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			st, err := openStorage(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer st.Close()

			n, err := db.SeedBaselines(cmd.Context(), st.baselines, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "seeded %d baselines\n", n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with baselines")
	return cmd
}

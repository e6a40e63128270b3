// Package cli wires configuration, storage, the ads platform client and the
// scan loop behind the ads-firewall command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"ads-firewall/internal/config"
	"ads-firewall/internal/logger"
)

type app struct {
	stdout     io.Writer
	stderr     io.Writer
	configPath string
}

// NewRootCmd builds the command tree. Running the root command without a
// subcommand starts the firewall.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "ads-firewall",
		Short: "Watch ad campaigns for spend and traffic anomalies",
		Long: `ads-firewall polls the ads platform, compares each active campaign against
its stored baselines and raises alerts on anomalies. Critical spend spikes can
pause the campaign automatically.

Configuration comes from environment variables, optionally overridden by a
YAML file passed with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runFirewall,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newScanCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newMigrateCmd(a))
	root.AddCommand(newBaselinesCmd(a))
	return root
}

// load reads the configuration and builds the logger. full selects between
// complete validation and the storage-only subset.
func (a *app) load(full bool) (config.Config, *slog.Logger, io.Closer, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("load config: %w", err)
	}
	if full {
		err = cfg.Validate()
	} else {
		err = cfg.ValidateStorage()
	}
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	log, closer := logger.New(cfg.Log, a.stderr)
	log = log.With(slog.String("env", cfg.Env))
	return cfg, log, closer, nil
}

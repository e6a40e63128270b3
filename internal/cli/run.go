package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	httpadapter "ads-firewall/internal/adapter/http"
	"ads-firewall/internal/adapter/meta"
	"ads-firewall/internal/adapter/notify"
	"ads-firewall/internal/adapter/usecase"
	"ads-firewall/internal/config"
)

const shutdownTimeout = 5 * time.Second

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the scan loop and the operations HTTP server",
		Long: `Run scans immediately and then once per SCAN_INTERVAL until interrupted.
On SIGINT or SIGTERM the campaign being processed is finished, no new work is
started and the process exits.`,
		Args: cobra.NoArgs,
		RunE: a.runFirewall,
	}
}

// newScanner builds the scan orchestrator and its meta client on top of st.
func newScanner(cfg config.Config, st *storage, log *slog.Logger) (*usecase.Scanner, *meta.Client) {
	client := meta.New(cfg.Meta, log.With(slog.String("component", "meta")))
	sink := notify.NewSink(st.alerts, notify.FromConfig(cfg.Alerts, log), cfg.Alerts.Timeout, log.With(slog.String("component", "alerts")))

	scanner := usecase.NewScanner(
		client,
		client,
		st.baselines,
		sink,
		cfg.Thresholds.Domain(),
		usecase.ScanConfig{
			AccountID:    cfg.Meta.AdAccountID,
			Interval:     cfg.Scan.Interval,
			Concurrency:  cfg.Scan.Concurrency,
			DryRun:       cfg.Scan.DryRun,
			BaselineMode: cfg.Baseline.Mode,
			EMAAlpha:     cfg.Baseline.EMAAlpha,
			StoreTimeout: cfg.Scan.StoreTimeout,
		},
		log.With(slog.String("component", "scanner")),
	)
	return scanner, client
}

func (a *app) runFirewall(cmd *cobra.Command, _ []string) error {
	cfg, log, closer, err := a.load(true)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx := cmd.Context()
	st, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Error("storage error", slog.Any("error", err))
		return err
	}
	defer st.Close()

	scanner, client := newScanner(cfg, st, log)

	info, err := client.Ping(ctx, cfg.Meta.AdAccountID)
	if err != nil {
		log.Error("ads platform connection failed", slog.Any("error", err))
		return fmt.Errorf("connection check: %w", err)
	}
	log.Info("connected to ads platform", slog.String("account_id", info.ID), slog.String("account_name", info.Name))

	var srv *http.Server
	if cfg.HTTP.Enabled {
		handler := httpadapter.NewHandler(st.alerts, st.baselines, scanner, log.With(slog.String("component", "http")))
		srv = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
			Handler:           handler.Router(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("server error", slog.Any("error", err))
			}
		}()
	}

	runErr := scanner.Run(ctx)

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err = srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown error", slog.Any("error", err))
		} else {
			log.Info("server gracefully stopped")
		}
	}
	return runErr
}

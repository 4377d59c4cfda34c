// Package cli wires the shared startup path of the order tools: config,
// logger, credential resolution, and the dry-run/live executor choice.
package cli

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/PrajanyaSahu/binance-bot/internal/config"
	"github.com/PrajanyaSahu/binance-bot/internal/execution"
	"github.com/PrajanyaSahu/binance-bot/internal/metrics"
	"github.com/PrajanyaSahu/binance-bot/internal/risk"
	"github.com/PrajanyaSahu/binance-bot/internal/util"
)

// Exit codes shared by every tool. Validation failures use the stdlib
// flag convention; a live submission that ends in an ERROR result maps to
// ExitSubmit.
const (
	ExitOK     = 0
	ExitSubmit = 1
	ExitUsage  = 2
)

// App bundles the pieces every tool needs after startup.
type App struct {
	Cfg    *config.Config
	Log    zerolog.Logger
	Exec   execution.Executor
	Limits risk.Limits
	DryRun bool

	recorder   *execution.JSONLRecorder
	metricsSrv *http.Server
}

// NewApp loads configuration (defaults when path is empty), builds the
// logger, resolves credentials, and selects the executor once: missing
// credentials or an explicit dry-run flag yield the simulated executor,
// otherwise the live one. All call sites downstream are identical either
// way.
func NewApp(tool, cfgPath string, dryRun bool) (*App, error) {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	log := util.NewLogger(cfg.App.LogLevel, cfg.App.LogFile).With().Str("tool", tool).Logger()

	var recorder *execution.JSONLRecorder
	if cfg.App.RecordPath != "" {
		r, err := execution.NewJSONLRecorder(cfg.App.RecordPath)
		if err != nil {
			return nil, err
		}
		recorder = r
	}

	creds := config.LoadCredentials()
	if !creds.Present() && !dryRun {
		log.Warn().Msg("API key/secret not found in environment, forcing dry-run")
		dryRun = true
	}

	// a nil *JSONLRecorder must not end up inside the interface value
	var rec execution.ResultRecorder
	if recorder != nil {
		rec = recorder
	}

	var exec execution.Executor
	if dryRun {
		exec = execution.NewSimulated(log, rec)
	} else {
		exec = execution.NewLive(creds.APIKey, creds.APISecret, cfg.Exchange.Testnet, log, rec)
	}

	return &App{
		Cfg:      cfg,
		Log:      log,
		Exec:     exec,
		Limits:   risk.FromConfig(cfg.Risk.MaxOrderQty, cfg.Risk.MaxNotionalPerTrade),
		DryRun:   dryRun,
		recorder: recorder,
	}, nil
}

// ServeMetrics starts the /metrics listener when an address is
// configured. Only the long-running tools bother.
func (a *App) ServeMetrics() {
	if a.Cfg.App.MetricsAddr == "" {
		return
	}
	a.metricsSrv = metrics.Serve(a.Cfg.App.MetricsAddr)
	a.Log.Info().Str("addr", a.Cfg.App.MetricsAddr).Msg("metrics up")
}

// Close releases the recorder and metrics listener.
func (a *App) Close() {
	if a.recorder != nil {
		_ = a.recorder.Close()
	}
	if a.metricsSrv != nil {
		_ = a.metricsSrv.Close()
	}
}

// ExitCode folds submission results into a process exit code: any ERROR
// result makes the run exit non-zero, after every order was attempted.
func ExitCode(results ...execution.OrderResult) int {
	for _, result := range results {
		if !result.OK() {
			return ExitSubmit
		}
	}
	return ExitOK
}

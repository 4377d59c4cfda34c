// Binary stoplimit places a stop-limit order on Binance USDT-M futures.
//
// By default the trigger lives on the exchange: one conditional STOP
// order carrying both the trigger and the limit price. With --watch the
// trigger is evaluated locally against the mark-price stream and a plain
// limit order is placed once it fires.
//
// Example (dry-run):
//
//	stoplimit --symbol BTCUSDT --side BUY --qty 0.001 --stop 65000 --limit 64900 --dry-run
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	ossignal "os/signal"
	"syscall"

	"github.com/PrajanyaSahu/binance-bot/internal/cli"
	"github.com/PrajanyaSahu/binance-bot/internal/exchange"
	"github.com/PrajanyaSahu/binance-bot/internal/execution"
	"github.com/PrajanyaSahu/binance-bot/internal/signal"
	"github.com/PrajanyaSahu/binance-bot/internal/strategy"
	"github.com/PrajanyaSahu/binance-bot/internal/validate"
)

func main() { os.Exit(run()) }

func run() int {
	var (
		symbolFlag = flag.String("symbol", "", "trading pair, e.g. BTCUSDT")
		sideFlag   = flag.String("side", "", "BUY or SELL")
		qtyFlag    = flag.String("qty", "", "order quantity")
		stopFlag   = flag.String("stop", "", "trigger price")
		limitFlag  = flag.String("limit", "", "limit price to work once triggered")
		watch      = flag.Bool("watch", false, "evaluate the trigger locally against the mark-price stream")
		dryRun     = flag.Bool("dry-run", false, "log the order instead of sending it")
		cfgPath    = flag.String("config", "", "optional YAML config path")
	)
	flag.Parse()

	symbol, err := validate.Symbol(*symbolFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitUsage
	}
	side, err := validate.Side(*sideFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitUsage
	}
	qty, err := validate.Quantity(*qtyFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitUsage
	}
	stop, limit, err := validate.StopLimitPrices(side, *stopFlag, *limitFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitUsage
	}

	app, err := cli.NewApp("stoplimit", *cfgPath, *dryRun)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitSubmit
	}
	defer app.Close()

	req := strategy.BuildStopLimit(symbol, side, qty, stop, limit)
	if err := app.Limits.Check(req); err != nil {
		app.Log.Error().Err(err).Msg("risk check rejected order")
		return cli.ExitUsage
	}

	ctx, cancel := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if !*watch {
		result := app.Exec.Submit(ctx, req)
		app.Log.Info().Interface("result", result).Msg("done")
		return cli.ExitCode(result)
	}

	app.ServeMetrics()

	// Dry-run watch sessions use the stub feed walking toward the trigger
	// so the flow is observable without touching the network.
	provider := exchange.ProviderBinance
	opts := []exchange.Option{}
	if app.DryRun {
		provider = exchange.ProviderStub
		start, _ := stop.Float64()
		step := start * 0.0005
		if side == execution.Sell {
			step = -step
		}
		opts = append(opts, exchange.WithStubPrices(start-10*step, step))
	}
	feed := exchange.NewFeed(provider, symbol, app.Log, opts...)

	ticks := make(chan signal.Tick, 64)
	go func() {
		if err := feed.Run(ctx, ticks); err != nil && ctx.Err() == nil {
			app.Log.Error().Err(err).Msg("feed stopped")
			cancel()
		}
		close(ticks)
	}()

	watcher := strategy.NewStopLimitWatcher(app.Exec, app.Log)
	result, fired := watcher.Run(ctx, req, ticks)
	if !fired {
		return cli.ExitSubmit
	}
	app.Log.Info().Interface("result", result).Msg("done")
	return cli.ExitCode(result)
}

// Binary twap slices a large order into equal market-order chunks spread
// evenly across a duration. The chunk quantity is rounded down to eight
// decimal places and the final chunk absorbs the remainder, so the
// submitted total always equals the requested total.
//
// Example (dry-run):
//
//	twap --symbol BTCUSDT --side BUY --total 0.01 --chunks 5 --duration 60 --dry-run
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	ossignal "os/signal"
	"syscall"

	"github.com/PrajanyaSahu/binance-bot/internal/cli"
	"github.com/PrajanyaSahu/binance-bot/internal/execution"
	"github.com/PrajanyaSahu/binance-bot/internal/strategy"
	"github.com/PrajanyaSahu/binance-bot/internal/validate"
)

func main() { os.Exit(run()) }

func run() int {
	var (
		symbolFlag   = flag.String("symbol", "", "trading pair, e.g. BTCUSDT")
		sideFlag     = flag.String("side", "", "BUY or SELL")
		totalFlag    = flag.String("total", "", "total quantity to execute")
		chunksFlag   = flag.Int("chunks", 0, "number of slices")
		durationFlag = flag.Int("duration", 0, "total duration in seconds")
		dryRun       = flag.Bool("dry-run", false, "log the orders instead of sending them")
		cfgPath      = flag.String("config", "", "optional YAML config path")
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
	total, duration, err := validate.TWAPParams(*totalFlag, *chunksFlag, *durationFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitUsage
	}

	app, err := cli.NewApp("twap", *cfgPath, *dryRun)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitSubmit
	}
	defer app.Close()
	app.ServeMetrics()

	plan := strategy.BuildTWAP(symbol, side, total, *chunksFlag, duration)
	for _, qty := range plan.Chunks {
		req := execution.NewRequest(symbol, side, execution.Market, qty)
		if err := app.Limits.Check(req); err != nil {
			app.Log.Error().Err(err).Msg("risk check rejected plan")
			return cli.ExitUsage
		}
	}

	ctx, cancel := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	results := strategy.NewTWAPRunner(app.Exec, app.Log).Run(ctx, plan)
	app.Log.Info().Int("submitted", len(results)).Msg("TWAP finished")
	return cli.ExitCode(results...)
}

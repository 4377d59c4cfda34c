// Binary grid places a static ladder of limit orders at evenly spaced
// price levels between a lower and an upper bound, both inclusive. The
// ladder is placed once; fills are not monitored and levels are not
// re-placed.
//
// Example (dry-run):
//
//	grid --symbol BTCUSDT --side BUY --lower 60000 --upper 70000 --grids 4 --qty 0.0005 --dry-run
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
		symbolFlag = flag.String("symbol", "", "trading pair, e.g. BTCUSDT")
		sideFlag   = flag.String("side", "BUY", "BUY or SELL ladder")
		lowerFlag  = flag.String("lower", "", "lower price bound")
		upperFlag  = flag.String("upper", "", "upper price bound")
		gridsFlag  = flag.Int("grids", 0, "number of grid steps (levels = steps+1)")
		qtyFlag    = flag.String("qty", "", "quantity per level")
		dryRun     = flag.Bool("dry-run", false, "log the orders instead of sending them")
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
	lower, upper, err := validate.GridBounds(*lowerFlag, *upperFlag, *gridsFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitUsage
	}

	app, err := cli.NewApp("grid", *cfgPath, *dryRun)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitSubmit
	}
	defer app.Close()
	app.ServeMetrics()

	plan := strategy.BuildGrid(symbol, side, lower, upper, *gridsFlag, qty)
	for _, level := range plan.Levels {
		req := execution.NewRequest(symbol, side, execution.Limit, qty)
		req.Price = level
		if err := app.Limits.Check(req); err != nil {
			app.Log.Error().Err(err).Msg("risk check rejected plan")
			return cli.ExitUsage
		}
	}

	ctx, cancel := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	results := strategy.NewGridRunner(app.Exec, app.Log).Run(ctx, plan)
	app.Log.Info().Int("placed", len(results)).Msg("grid finished")
	return cli.ExitCode(results...)
}

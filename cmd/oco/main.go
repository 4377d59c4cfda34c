// Binary oco emulates a one-cancels-the-other pair on Binance USDT-M
// futures: a take-profit limit order on the given side plus a stop-market
// order on the opposite side. The exchange offers no atomicity across the
// two orders; each leg is submitted and logged independently. With
// --watch the tool keeps polling after live placement and cancels the
// surviving leg once the other fills.
//
// Example (dry-run):
//
//	oco --symbol BTCUSDT --side SELL --qty 0.001 --tp 70000 --sl 60000 --dry-run
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"github.com/PrajanyaSahu/binance-bot/internal/cli"
	"github.com/PrajanyaSahu/binance-bot/internal/strategy"
	"github.com/PrajanyaSahu/binance-bot/internal/validate"
)

func main() { os.Exit(run()) }

func run() int {
	var (
		symbolFlag   = flag.String("symbol", "", "trading pair, e.g. BTCUSDT")
		sideFlag     = flag.String("side", "", "side of the take-profit leg: BUY or SELL")
		qtyFlag      = flag.String("qty", "", "quantity per leg")
		tpFlag       = flag.String("tp", "", "take-profit limit price")
		slFlag       = flag.String("sl", "", "stop-loss trigger price")
		watch        = flag.Bool("watch", false, "after live placement, cancel the sibling when one leg fills")
		pollInterval = flag.Duration("poll-interval", 2*time.Second, "status poll cadence in watch mode")
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
	qty, err := validate.Quantity(*qtyFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitUsage
	}
	tp, sl, err := validate.OCOPrices(side, *tpFlag, *slFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitUsage
	}

	app, err := cli.NewApp("oco", *cfgPath, *dryRun)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitSubmit
	}
	defer app.Close()

	pair := strategy.BuildOCO(symbol, side, qty, tp, sl)
	if err := app.Limits.Check(pair.TakeProfit); err != nil {
		app.Log.Error().Err(err).Msg("risk check rejected take-profit leg")
		return cli.ExitUsage
	}
	if err := app.Limits.Check(pair.StopLoss); err != nil {
		app.Log.Error().Err(err).Msg("risk check rejected stop-loss leg")
		return cli.ExitUsage
	}

	ctx, cancel := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	runner := strategy.NewOCORunner(app.Exec, app.Log)
	tpResult, slResult := runner.Place(ctx, pair)
	app.Log.Info().Interface("tp", tpResult).Interface("sl", slResult).Msg("legs placed")

	code := cli.ExitCode(tpResult, slResult)
	if !*watch || app.DryRun || code != cli.ExitOK {
		return code
	}

	app.ServeMetrics()
	if err := runner.Watch(ctx, symbol, tpResult.OrderID, slResult.OrderID, *pollInterval); err != nil && ctx.Err() == nil {
		app.Log.Error().Err(err).Msg("watch ended with error")
		return cli.ExitSubmit
	}
	return cli.ExitOK
}

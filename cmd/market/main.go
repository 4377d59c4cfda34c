// Binary market places a single market order on Binance USDT-M futures.
//
// Example (dry-run):
//
//	market --symbol BTCUSDT --side BUY --qty 0.001 --dry-run
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
	"github.com/PrajanyaSahu/binance-bot/internal/validate"
)

func main() { os.Exit(run()) }

func run() int {
	var (
		symbolFlag = flag.String("symbol", "", "trading pair, e.g. BTCUSDT")
		sideFlag   = flag.String("side", "", "BUY or SELL")
		qtyFlag    = flag.String("qty", "", "order quantity")
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

	app, err := cli.NewApp("market", *cfgPath, *dryRun)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitSubmit
	}
	defer app.Close()

	req := execution.NewRequest(symbol, side, execution.Market, qty)
	if err := app.Limits.Check(req); err != nil {
		app.Log.Error().Err(err).Msg("risk check rejected order")
		return cli.ExitUsage
	}

	ctx, cancel := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	result := app.Exec.Submit(ctx, req)
	app.Log.Info().Interface("result", result).Msg("done")
	return cli.ExitCode(result)
}

// Binary limit places a single limit order on Binance USDT-M futures.
//
// Example (dry-run):
//
//	limit --symbol BTCUSDT --side BUY --qty 0.001 --price 60000 --dry-run
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
		priceFlag  = flag.String("price", "", "limit price")
		tifFlag    = flag.String("tif", "", "time in force (defaults to config, GTC)")
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
	price, err := validate.Price("price", *priceFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitUsage
	}

	app, err := cli.NewApp("limit", *cfgPath, *dryRun)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitSubmit
	}
	defer app.Close()

	req := execution.NewRequest(symbol, side, execution.Limit, qty)
	req.Price = price
	req.TimeInForce = *tifFlag
	if req.TimeInForce == "" {
		req.TimeInForce = app.Cfg.Exchange.TimeInForce
	}
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

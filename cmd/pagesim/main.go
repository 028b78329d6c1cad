// Command pagesim runs the Monte Carlo page-replacement simulation and
// writes the averaged fault table to a CSV report.
//
// Run using
//
//	go run ./cmd/pagesim <flags>
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	pagesim "github.com/jhael/go-pagesim"
	"github.com/urfave/cli/v2"
)

var (
	trialsFlag = cli.IntFlag{
		Name:  "trials",
		Usage: "number of Monte Carlo trials to average over",
		Value: 1000,
	}
	traceLengthFlag = cli.IntFlag{
		Name:  "trace-length",
		Usage: "number of page references per trace",
		Value: 1000,
	}
	regionSizeFlag = cli.IntFlag{
		Name:  "region-size",
		Usage: "number of consecutive references per locality region",
		Value: 100,
	}
	wssLowFlag = cli.IntFlag{
		Name:  "wss-low",
		Usage: "lower bound of the working-set-size sweep (inclusive)",
		Value: 4,
	}
	wssHighFlag = cli.IntFlag{
		Name:  "wss-high",
		Usage: "upper bound of the working-set-size sweep (inclusive)",
		Value: 20,
	}
	strideFlag = cli.IntFlag{
		Name:  "stride",
		Usage: "value-band separation between adjacent regions",
		Value: 10,
	}
	meanFlag = cli.Float64Flag{
		Name:  "mean",
		Usage: "mean of the per-region reference distribution",
		Value: 10,
	}
	stddevFlag = cli.Float64Flag{
		Name:  "stddev",
		Usage: "standard deviation of the per-region reference distribution",
		Value: 2,
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "random seed; defaults to the current wall-clock time",
	}
	workersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "trial goroutines; 1 preserves the sequential random stream",
		Value: 1,
	}
	outputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "report destination; defaults to a timestamped CSV file",
	}
	quietFlag = cli.BoolFlag{
		Name:  "quiet",
		Usage: "suppress the per-trial progress line",
	}
)

func main() {
	app := &cli.App{
		Name:  "pagesim",
		Usage: "Monte Carlo simulation of LRU, FIFO and Clock page replacement",
		Flags: []cli.Flag{
			&trialsFlag,
			&traceLengthFlag,
			&regionSizeFlag,
			&wssLowFlag,
			&wssHighFlag,
			&strideFlag,
			&meanFlag,
			&stddevFlag,
			&seedFlag,
			&workersFlag,
			&outputFlag,
			&quietFlag,
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	var (
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
		start  = time.Now()
		seed   = ctx.Int64("seed")
	)
	if !ctx.IsSet("seed") {
		seed = start.UnixNano()
	}
	config := pagesim.Config{
		Trials:    ctx.Int("trials"),
		SweepLow:  ctx.Int("wss-low"),
		SweepHigh: ctx.Int("wss-high"),
		Workers:   ctx.Int("workers"),
		Trace: pagesim.TraceConfig{
			Length:     ctx.Int("trace-length"),
			RegionSize: ctx.Int("region-size"),
			Stride:     ctx.Int("stride"),
			Mean:       ctx.Float64("mean"),
			StdDev:     ctx.Float64("stddev"),
		},
		Policies: pagesim.Policies(),
	}
	if !ctx.Bool("quiet") {
		config.Progress = printProgress
	}
	simulator, err := pagesim.New(config, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	results, err := simulator.Run()
	if err != nil {
		return err
	}
	name := ctx.String("output")
	if name == "" {
		name = start.Format("pagesim_01-02-2006_15-04-05.csv")
	}
	if err := writeReport(results, name); err != nil {
		return err
	}
	logger.Info("simulation complete",
		"trials", config.Trials,
		"wss", fmt.Sprintf("%d..%d", config.SweepLow, config.SweepHigh),
		"seed", seed,
		"report", name,
		"elapsed", time.Since(start))
	return nil
}

// printProgress emits one tick per trial, five to a line.
func printProgress(trial, total int) {
	separator := "\t"
	if trial%5 == 0 || trial == total {
		separator = "\n"
	}
	fmt.Fprintf(os.Stderr, "Running traces... (%d/%d)%s", trial, total, separator)
}

// writeReport creates the report file. Failure to create or fill it is
// fatal to the run; there is no partial-result recovery path.
func writeReport(results *pagesim.Results, name string) error {
	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create report %s: %w", name, err)
	}
	if err := results.WriteCSV(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close report %s: %w", name, err)
	}
	return nil
}

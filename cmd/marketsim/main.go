package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"marketsim/params"
	"marketsim/pkg/input"
	"marketsim/pkg/market"
	"marketsim/pkg/sim"
	"marketsim/pkg/util"
)

var flags struct {
	verbose       bool
	median        bool
	traderInfo    bool
	timeTravelers bool
	inputPath     string
}

var rootCmd = &cobra.Command{
	Use:          "marketsim",
	Short:        "Simulate one day of a multi-stock continuous double auction",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := params.LoadFromEnv("")

		// Flags the user set override env and .env values.
		if cmd.Flags().Changed("verbose") {
			cfg.Output.VerboseTrades = flags.verbose
		}
		if cmd.Flags().Changed("median") {
			cfg.Output.Median = flags.median
		}
		if cmd.Flags().Changed("trader-info") {
			cfg.Output.TraderInfo = flags.traderInfo
		}
		if cmd.Flags().Changed("time-travelers") {
			cfg.Output.TimeTravelers = flags.timeTravelers
		}
		if cmd.Flags().Changed("input") {
			cfg.Input = flags.inputPath
		}
		return run(cfg)
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "print every trade as it settles")
	rootCmd.Flags().BoolVarP(&flags.median, "median", "m", false, "print median match prices at each timestamp")
	rootCmd.Flags().BoolVarP(&flags.traderInfo, "trader-info", "i", false, "print per-trader totals at end of day")
	rootCmd.Flags().BoolVarP(&flags.timeTravelers, "time-travelers", "t", false, "print hindsight round trips at end of day")
	rootCmd.Flags().StringVarP(&flags.inputPath, "input", "f", "", "order trace file (default stdin)")
}

func run(cfg params.Config) error {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.LogFile != "" {
		logger, err = util.NewLoggerWithFile(cfg.LogFile)
	} else {
		logger, err = util.NewLogger()
	}
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	in := os.Stdin
	if cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	hdr, err := input.ReadHeader(sc)
	if err != nil {
		sugar.Errorw("bad_header", "err", err)
		return err
	}
	sugar.Infow("day_start",
		"mode", hdr.Mode, "traders", hdr.NumTraders, "stocks", hdr.NumStocks)

	var src input.OrderSource
	switch hdr.Mode {
	case input.ModePR:
		src = input.NewGenerator(hdr)
	default:
		src = input.NewTraceReader(sc, hdr)
	}

	opts := market.Options{
		NumStocks:          hdr.NumStocks,
		NumTraders:         hdr.NumTraders,
		VerboseTrades:      cfg.Output.VerboseTrades,
		TrackMedian:        cfg.Output.Median,
		TrackTraders:       cfg.Output.TraderInfo,
		TrackTimeTravelers: cfg.Output.TimeTravelers,
	}
	mkt := market.New(opts, sugar)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	runner := sim.NewRunner(mkt, src, sim.NewPrinter(out), opts, sugar)
	if err := runner.Run(); err != nil {
		sugar.Errorw("run_failed", "err", err)
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package sim_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketsim/pkg/input"
	"marketsim/pkg/market"
	"marketsim/pkg/sim"
)

func runTrace(t *testing.T, trace string, tweak func(*market.Options)) string {
	t.Helper()

	sc := bufio.NewScanner(strings.NewReader(trace))
	hdr, err := input.ReadHeader(sc)
	require.NoError(t, err)

	opts := market.Options{
		NumStocks:          hdr.NumStocks,
		NumTraders:         hdr.NumTraders,
		VerboseTrades:      true,
		TrackMedian:        true,
		TrackTraders:       true,
		TrackTimeTravelers: true,
	}
	if tweak != nil {
		tweak(&opts)
	}

	var src input.OrderSource
	if hdr.Mode == input.ModePR {
		src = input.NewGenerator(hdr)
	} else {
		src = input.NewTraceReader(sc, hdr)
	}

	mkt := market.New(opts, nil)
	var buf bytes.Buffer
	runner := sim.NewRunner(mkt, src, sim.NewPrinter(&buf), opts, nil)
	require.NoError(t, runner.Run())
	return buf.String()
}

func TestRunnerFullDayReport(t *testing.T) {
	trace := strings.Join([]string{
		"COMMENT: two stocks, two traders",
		"MODE: TL",
		"NUM_TRADERS: 2",
		"NUM_STOCKS: 2",
		"0 BUY T0 S0 $10 #5",
		"0 SELL T1 S0 $8 #5",
		"1 SELL T1 S1 $5 #10",
		"2 SELL T0 S1 $3 #10",
		"3 BUY T1 S1 $9 #10",
		"",
	}, "\n")

	want := strings.Join([]string{
		"Processing orders...",
		"Trader 0 purchased 5 shares of Stock 0 from Trader 1 for $10/share",
		"Median match price of Stock 0 at time 0 is $10",
		"Trader 1 purchased 10 shares of Stock 1 from Trader 0 for $3/share",
		"Median match price of Stock 1 at time 3 is $3",
		"---End of Day---",
		"Trades Completed: 2",
		"---Trader Info---",
		"Trader 0 bought 5 and sold 10 for a net transfer of $-20",
		"Trader 1 bought 10 and sold 5 for a net transfer of $20",
		"---Time Travelers---",
		"A time traveler could not make a profit on Stock 0",
		"A time traveler would buy Stock 1 at time 2 for $3 and sell it at time 3 for $9",
		"",
	}, "\n")

	assert.Equal(t, want, runTrace(t, trace, nil))
}

func TestRunnerQuietModeOnlyPrintsSummary(t *testing.T) {
	trace := strings.Join([]string{
		"COMMENT: quiet",
		"MODE: TL",
		"NUM_TRADERS: 2",
		"NUM_STOCKS: 1",
		"0 SELL T0 S0 $5 #5",
		"1 BUY T1 S0 $6 #5",
		"",
	}, "\n")

	got := runTrace(t, trace, func(o *market.Options) {
		o.VerboseTrades = false
		o.TrackMedian = false
		o.TrackTraders = false
		o.TrackTimeTravelers = false
	})

	want := strings.Join([]string{
		"Processing orders...",
		"---End of Day---",
		"Trades Completed: 1",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRunnerMedianPerIntervalNotCumulative(t *testing.T) {
	// Three trades at time 0 and one at time 2; each interval's median
	// reflects only its own trades.
	trace := strings.Join([]string{
		"COMMENT: interval medians",
		"MODE: TL",
		"NUM_TRADERS: 2",
		"NUM_STOCKS: 1",
		"0 SELL T0 S0 $4 #1",
		"0 BUY T1 S0 $4 #1",
		"0 SELL T0 S0 $6 #1",
		"0 BUY T1 S0 $6 #1",
		"0 SELL T0 S0 $8 #1",
		"0 BUY T1 S0 $8 #1",
		"2 SELL T0 S0 $20 #1",
		"2 BUY T1 S0 $20 #1",
		"",
	}, "\n")

	got := runTrace(t, trace, func(o *market.Options) {
		o.VerboseTrades = false
		o.TrackTraders = false
		o.TrackTimeTravelers = false
	})

	want := strings.Join([]string{
		"Processing orders...",
		"Median match price of Stock 0 at time 0 is $6",
		"Median match price of Stock 0 at time 2 is $20",
		"---End of Day---",
		"Trades Completed: 4",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRunnerPRModeEndToEnd(t *testing.T) {
	trace := strings.Join([]string{
		"COMMENT: generated day",
		"MODE: PR",
		"NUM_TRADERS: 6",
		"NUM_STOCKS: 3",
		"RANDOM_SEED: 12345",
		"NUMBER_OF_ORDERS: 2000",
		"ARRIVAL_RATE: 5",
		"",
	}, "\n")

	first := runTrace(t, trace, nil)
	second := runTrace(t, trace, nil)
	assert.Equal(t, first, second, "PR runs are reproducible")
	assert.Contains(t, first, "---End of Day---")
	assert.Contains(t, first, "---Trader Info---")
	assert.Contains(t, first, "---Time Travelers---")
}

func TestRunnerStopsOnBadRecord(t *testing.T) {
	trace := strings.Join([]string{
		"COMMENT: bad record mid-stream",
		"MODE: TL",
		"NUM_TRADERS: 2",
		"NUM_STOCKS: 1",
		"0 SELL T0 S0 $5 #5",
		"1 BUY T9 S0 $6 #5",
		"",
	}, "\n")

	sc := bufio.NewScanner(strings.NewReader(trace))
	hdr, err := input.ReadHeader(sc)
	require.NoError(t, err)

	opts := market.Options{NumStocks: hdr.NumStocks, NumTraders: hdr.NumTraders}
	mkt := market.New(opts, nil)
	var buf bytes.Buffer
	runner := sim.NewRunner(mkt, input.NewTraceReader(sc, hdr), sim.NewPrinter(&buf), opts, nil)

	err = runner.Run()
	require.ErrorIs(t, err, market.ErrInvalidReference)
}

package sim

import (
	"io"

	"go.uber.org/zap"

	"marketsim/pkg/input"
	"marketsim/pkg/market"
)

// Runner drives one trading day: orders are pulled from the source one at a
// time and fed to the engine, medians are flushed at every timestamp
// advance, and the end-of-day reports are printed when the stream ends.
type Runner struct {
	mkt *market.Market
	src input.OrderSource
	out *Printer
	log *zap.SugaredLogger

	opts market.Options
}

func NewRunner(mkt *market.Market, src input.OrderSource, out *Printer, opts market.Options, log *zap.SugaredLogger) *Runner {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Runner{mkt: mkt, src: src, out: out, log: log, opts: opts}
}

// Run processes the whole stream. Any error is fatal; partial engine state
// cannot be rolled back, so the caller should abort the process.
func (r *Runner) Run() error {
	r.out.Processing()

	var (
		currentTime uint32
		orders      uint64
	)
	for {
		o, err := r.src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if o.Timestamp != currentTime {
			r.flushMedians(currentTime)
			currentTime = o.Timestamp
		}

		fills, err := r.mkt.Submit(o)
		if err != nil {
			return err
		}
		for _, t := range fills {
			r.out.Trade(t)
		}
		orders++
	}

	// Medians for the final timestamp have not been emitted yet.
	r.flushMedians(currentTime)

	r.out.EndOfDay(r.mkt.TradesCompleted())
	if r.opts.TrackTraders {
		r.out.TraderInfo(r.mkt.TraderStats())
	}
	if r.opts.TrackTimeTravelers {
		r.out.TravelersHeader()
		for stock := uint32(0); stock < r.opts.NumStocks; stock++ {
			res, ok := r.mkt.TravelerResult(stock)
			r.out.Traveler(stock, res, ok)
		}
	}

	r.log.Infow("day_complete", "orders", orders, "trades", r.mkt.TradesCompleted())
	return nil
}

func (r *Runner) flushMedians(time uint32) {
	for _, pt := range r.mkt.CloseInterval() {
		r.out.Median(pt.Stock, time, pt.Price)
	}
}

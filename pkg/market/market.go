package market

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Options configures one trading day. The three trackers are optional;
// disabling one removes its cost entirely.
type Options struct {
	NumStocks  uint32
	NumTraders uint32

	VerboseTrades      bool
	TrackMedian        bool
	TrackTraders       bool
	TrackTimeTravelers bool
}

// MedianPoint is the median trade price of one stock over the timestamp
// interval that just closed.
type MedianPoint struct {
	Stock uint32
	Price int64
}

// Market is the matching engine for a full trading day: one order book per
// stock, matched by price-time priority, with optional per-trader, median
// and time-traveler tracking hanging off the same order stream.
//
// Not safe for concurrent use; the whole day is processed on one goroutine.
type Market struct {
	opts Options
	log  *zap.SugaredLogger

	books     []*Book
	ledger    *Ledger
	medians   []*MedianTracker
	travelers []*Traveler

	currentTime uint32
	seq         uint64
	trades      uint64
}

func New(opts Options, log *zap.SugaredLogger) *Market {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	m := &Market{opts: opts, log: log}

	m.books = make([]*Book, opts.NumStocks)
	for i := range m.books {
		m.books[i] = NewBook()
	}
	if opts.TrackTraders {
		m.ledger = NewLedger(opts.NumTraders)
	}
	if opts.TrackMedian {
		m.medians = make([]*MedianTracker, opts.NumStocks)
		for i := range m.medians {
			m.medians[i] = NewMedianTracker()
		}
	}
	if opts.TrackTimeTravelers {
		m.travelers = make([]*Traveler, opts.NumStocks)
		for i := range m.travelers {
			m.travelers[i] = NewTraveler()
		}
	}
	return m
}

// Submit processes one incoming order to completion: the time traveler sees
// it first, then it is inserted into its book and matched exhaustively
// against the opposite side. The returned trades are populated only when
// VerboseTrades is set; counters and trackers are updated either way.
//
// Orders are trusted to have been validated by the input layer; a violation
// detected here is fatal and returns a non-nil error.
func (m *Market) Submit(o Order) ([]Trade, error) {
	if err := m.check(o); err != nil {
		m.log.Errorw("order_rejected", "trader", o.Trader, "stock", o.Stock, "err", err)
		return nil, err
	}
	m.currentTime = o.Timestamp
	o.Seq = m.seq
	m.seq++

	if m.travelers != nil {
		m.travelers[o.Stock].Observe(o)
	}

	book := m.books[o.Stock]
	book.Insert(&o)
	return m.match(book, o.Stock), nil
}

func (m *Market) check(o Order) error {
	if o.Timestamp < m.currentTime {
		return errors.Wrapf(ErrOutOfOrderTimestamp, "order at time %d after time %d", o.Timestamp, m.currentTime)
	}
	if o.Trader >= m.opts.NumTraders || o.Stock >= m.opts.NumStocks {
		return errors.Wrapf(ErrInvalidReference, "trader %d stock %d", o.Trader, o.Stock)
	}
	if o.Price <= 0 || o.Qty <= 0 {
		return errors.Wrapf(ErrNonPositiveValue, "price %d qty %d", o.Price, o.Qty)
	}
	return nil
}

func (m *Market) match(book *Book, stock uint32) []Trade {
	var fills []Trade
	for {
		buy, sell := book.BestBuy(), book.BestSell()
		if buy == nil || sell == nil || sell.Price > buy.Price {
			break
		}

		// The earlier of the two orders posted the binding quote. Seq order
		// is arrival order and timestamps never disagree with it.
		price := buy.Price
		if sell.Seq < buy.Seq {
			price = sell.Price
		}
		qty := min(buy.Qty, sell.Qty)

		if m.ledger != nil {
			m.ledger.Bought(buy.Trader, qty, price)
			m.ledger.Sold(sell.Trader, qty, price)
		}
		if m.medians != nil {
			m.medians[stock].Insert(price)
		}
		m.trades++

		if m.opts.VerboseTrades {
			fills = append(fills, Trade{
				Buyer:  buy.Trader,
				Seller: sell.Trader,
				Stock:  stock,
				Qty:    qty,
				Price:  price,
			})
		}

		buy.Qty -= qty
		sell.Qty -= qty
		if buy.Qty == 0 {
			book.PopBuy()
		}
		if sell.Qty == 0 {
			book.PopSell()
		}
	}
	return fills
}

// CloseInterval emits the median trade price per stock for the timestamp
// interval that just elapsed and resets the trackers for the next one.
// Stocks with no trades in the interval are omitted. The driver calls this
// whenever it detects a timestamp advance, and once more at end of stream.
// Returns nil when median tracking is disabled.
func (m *Market) CloseInterval() []MedianPoint {
	if m.medians == nil {
		return nil
	}
	var points []MedianPoint
	for stock, tracker := range m.medians {
		if price, ok := tracker.Median(); ok {
			points = append(points, MedianPoint{Stock: uint32(stock), Price: price})
		}
		tracker.Reset()
	}
	return points
}

// TradesCompleted is the global count of settlements so far.
func (m *Market) TradesCompleted() uint64 { return m.trades }

// TraderStats returns the ledger in trader id order, nil when trader
// tracking is disabled.
func (m *Market) TraderStats() []TraderStats {
	if m.ledger == nil {
		return nil
	}
	return m.ledger.Stats()
}

// TravelerResult returns the time-traveler outcome for one stock. ok is
// false when no profitable round trip exists or tracking is disabled.
func (m *Market) TravelerResult(stock uint32) (TravelerResult, bool) {
	if m.travelers == nil || stock >= m.opts.NumStocks {
		return TravelerResult{}, false
	}
	return m.travelers[stock].Result()
}

// Book exposes the resting book for one stock, for inspection in tests.
func (m *Market) Book(stock uint32) *Book { return m.books[stock] }

func min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

package market

// PricePoint is a price observed at a timestamp.
type PricePoint struct {
	Price int64
	Time  uint32
}

// TravelerResult is the best single buy-then-sell round trip found for a
// stock by a trader with perfect hindsight.
type TravelerResult struct {
	Buy  PricePoint
	Sell PricePoint
}

// Traveler watches the raw order stream for one stock, in arrival order,
// and keeps the best committed round trip seen so far. A sell order is a
// candidate entry (the traveler could buy from it), a buy order a candidate
// exit. The state machine is encoded as one type per state so each state
// carries exactly the payload that is meaningful in it.
type Traveler struct {
	state travelerState
}

func NewTraveler() *Traveler {
	return &Traveler{state: ttNone{}}
}

// Observe feeds the next order for this stock. Must be called before the
// order reaches the matching engine, matched and unmatched alike.
func (t *Traveler) Observe(o Order) {
	t.state = t.state.observe(o)
}

// Result returns the committed round trip, if one exists. It is meaningful
// only after the whole stream has been observed.
func (t *Traveler) Result() (TravelerResult, bool) {
	switch s := t.state.(type) {
	case ttComplete:
		return TravelerResult{Buy: s.buy, Sell: s.sell}, true
	case ttPotential:
		return TravelerResult{Buy: s.buy, Sell: s.sell}, true
	default:
		return TravelerResult{}, false
	}
}

type travelerState interface {
	observe(o Order) travelerState
}

// ttNone: no entry opportunity seen yet. Buy orders are no-ops.
type ttNone struct{}

func (ttNone) observe(o Order) travelerState {
	if o.Side == Sell {
		return ttCanBuy{buy: PricePoint{Price: o.Price, Time: o.Timestamp}}
	}
	return ttNone{}
}

// ttCanBuy: an entry exists but no exit has been committed.
type ttCanBuy struct {
	buy PricePoint
}

func (s ttCanBuy) observe(o Order) travelerState {
	if o.Side == Sell {
		if o.Price < s.buy.Price {
			s.buy = PricePoint{Price: o.Price, Time: o.Timestamp}
		}
		return s
	}
	if o.Price > s.buy.Price {
		return ttComplete{buy: s.buy, sell: PricePoint{Price: o.Price, Time: o.Timestamp}}
	}
	return s
}

// ttComplete: a profitable round trip is committed.
type ttComplete struct {
	buy  PricePoint
	sell PricePoint
}

func (s ttComplete) observe(o Order) travelerState {
	if o.Side == Sell {
		if o.Price < s.buy.Price {
			return ttPotential{
				buy:  s.buy,
				sell: s.sell,
				alt:  PricePoint{Price: o.Price, Time: o.Timestamp},
			}
		}
		return s
	}
	if o.Price > s.sell.Price {
		s.sell = PricePoint{Price: o.Price, Time: o.Timestamp}
	}
	return s
}

// ttPotential: a committed round trip plus a cheaper alternate entry held in
// reserve. The alternate replaces the committed trip only when an exit beats
// the committed profit outright; a tie keeps the committed trip.
type ttPotential struct {
	buy  PricePoint
	sell PricePoint
	alt  PricePoint
}

func (s ttPotential) observe(o Order) travelerState {
	if o.Side == Sell {
		if o.Price < s.alt.Price {
			s.alt = PricePoint{Price: o.Price, Time: o.Timestamp}
		}
		return s
	}
	if o.Price-s.alt.Price > s.sell.Price-s.buy.Price {
		return ttComplete{buy: s.alt, sell: PricePoint{Price: o.Price, Time: o.Timestamp}}
	}
	if o.Price < s.alt.Price {
		s.alt = PricePoint{Price: o.Price, Time: o.Timestamp}
	}
	return s
}

package market

// TraderStats accumulates one trader's activity over the run. NetTransfer is
// signed and at qty*price scale, so int64 leaves ample headroom for any
// plausible day of trading.
type TraderStats struct {
	TotalBought int64
	TotalSold   int64
	NetTransfer int64
}

// Ledger is the per-trader bookkeeping, index-addressed by trader id.
type Ledger struct {
	traders []TraderStats
}

func NewLedger(numTraders uint32) *Ledger {
	return &Ledger{traders: make([]TraderStats, numTraders)}
}

func (l *Ledger) Bought(id uint32, qty, price int64) {
	t := &l.traders[id]
	t.TotalBought += qty
	t.NetTransfer -= qty * price
}

func (l *Ledger) Sold(id uint32, qty, price int64) {
	t := &l.traders[id]
	t.TotalSold += qty
	t.NetTransfer += qty * price
}

// Stats returns the per-trader totals in trader id order.
func (l *Ledger) Stats() []TraderStats { return l.traders }

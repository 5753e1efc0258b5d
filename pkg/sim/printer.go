package sim

import (
	"fmt"
	"io"

	"marketsim/pkg/market"
)

// Printer formats engine output as the classic text report.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Processing() {
	fmt.Fprintln(p.w, "Processing orders...")
}

func (p *Printer) Trade(t market.Trade) {
	fmt.Fprintf(p.w, "Trader %d purchased %d shares of Stock %d from Trader %d for $%d/share\n",
		t.Buyer, t.Qty, t.Stock, t.Seller, t.Price)
}

func (p *Printer) Median(stock uint32, time uint32, price int64) {
	fmt.Fprintf(p.w, "Median match price of Stock %d at time %d is $%d\n", stock, time, price)
}

func (p *Printer) EndOfDay(trades uint64) {
	fmt.Fprintln(p.w, "---End of Day---")
	fmt.Fprintf(p.w, "Trades Completed: %d\n", trades)
}

func (p *Printer) TraderInfo(stats []market.TraderStats) {
	fmt.Fprintln(p.w, "---Trader Info---")
	for id, s := range stats {
		fmt.Fprintf(p.w, "Trader %d bought %d and sold %d for a net transfer of $%d\n",
			id, s.TotalBought, s.TotalSold, s.NetTransfer)
	}
}

func (p *Printer) TravelersHeader() {
	fmt.Fprintln(p.w, "---Time Travelers---")
}

func (p *Printer) Traveler(stock uint32, r market.TravelerResult, ok bool) {
	if !ok {
		fmt.Fprintf(p.w, "A time traveler could not make a profit on Stock %d\n", stock)
		return
	}
	fmt.Fprintf(p.w, "A time traveler would buy Stock %d at time %d for $%d and sell it at time %d for $%d\n",
		stock, r.Buy.Time, r.Buy.Price, r.Sell.Time, r.Sell.Price)
}

package input

import (
	"io"
	"math/rand"

	"marketsim/pkg/market"
)

// Generator is the PR-mode source: a deterministic pseudorandom order
// stream. The same header always produces the same stream, which keeps PR
// runs reproducible for benchmarking and regression comparison.
//
// Timestamps start at 0 and advance by up to ArrivalRate between orders;
// trader, stock and side are uniform, prices and quantities uniform in
// [1, 100]. Generated orders are valid by construction.
type Generator struct {
	hdr     Header
	rng     *rand.Rand
	emitted uint64
	now     uint32
}

func NewGenerator(hdr Header) *Generator {
	return &Generator{
		hdr: hdr,
		rng: rand.New(rand.NewSource(hdr.Seed)),
	}
}

func (g *Generator) Next() (market.Order, error) {
	if g.emitted >= g.hdr.NumOrders {
		return market.Order{}, io.EOF
	}
	if g.emitted > 0 && g.hdr.ArrivalRate > 0 {
		g.now += uint32(g.rng.Intn(int(g.hdr.ArrivalRate) + 1))
	}
	g.emitted++

	side := market.Buy
	if g.rng.Intn(2) == 1 {
		side = market.Sell
	}
	return market.Order{
		Timestamp: g.now,
		Trader:    uint32(g.rng.Intn(int(g.hdr.NumTraders))),
		Stock:     uint32(g.rng.Intn(int(g.hdr.NumStocks))),
		Side:      side,
		Price:     int64(g.rng.Intn(100)) + 1,
		Qty:       int64(g.rng.Intn(100)) + 1,
	}, nil
}

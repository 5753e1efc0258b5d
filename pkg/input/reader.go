package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"marketsim/pkg/market"
)

// OrderSource yields validated orders in arrival order. Next returns io.EOF
// when the stream is exhausted; any other error is fatal for the run.
type OrderSource interface {
	Next() (market.Order, error)
}

// TraceReader is the TL-mode source: one order per line,
//
//	<timestamp> <BUY|SELL> T<trader> S<stock> $<price> #<quantity>
//
// validated against the header's id ranges and the non-decreasing
// timestamp rule before being handed to the engine.
type TraceReader struct {
	sc       *bufio.Scanner
	hdr      Header
	lastTime uint32
	line     int
}

func NewTraceReader(sc *bufio.Scanner, hdr Header) *TraceReader {
	return &TraceReader{sc: sc, hdr: hdr}
}

func (r *TraceReader) Next() (market.Order, error) {
	for {
		if !r.sc.Scan() {
			if err := r.sc.Err(); err != nil {
				return market.Order{}, errors.Wrap(err, "read order")
			}
			return market.Order{}, io.EOF
		}
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		if text == "" {
			continue
		}

		var (
			ts, trader, stock uint32
			side              string
			price, qty        int64
		)
		n, err := fmt.Sscanf(text, "%d %s T%d S%d $%d #%d", &ts, &side, &trader, &stock, &price, &qty)
		if err != nil || n != 6 {
			return market.Order{}, errors.Wrapf(market.ErrMalformedInput, "line %d: %q", r.line, text)
		}

		o := market.Order{
			Timestamp: ts,
			Trader:    trader,
			Stock:     stock,
			Price:     price,
			Qty:       qty,
		}
		switch side {
		case "BUY":
			o.Side = market.Buy
		case "SELL":
			o.Side = market.Sell
		default:
			return market.Order{}, errors.Wrapf(market.ErrMalformedInput, "line %d: side %q", r.line, side)
		}

		if err := r.validate(o); err != nil {
			return market.Order{}, errors.Wrapf(err, "line %d", r.line)
		}
		r.lastTime = o.Timestamp
		return o, nil
	}
}

func (r *TraceReader) validate(o market.Order) error {
	if o.Timestamp < r.lastTime {
		return errors.Wrapf(market.ErrOutOfOrderTimestamp, "time %d after time %d", o.Timestamp, r.lastTime)
	}
	if o.Trader >= r.hdr.NumTraders {
		return errors.Wrapf(market.ErrInvalidReference, "trader %d of %d", o.Trader, r.hdr.NumTraders)
	}
	if o.Stock >= r.hdr.NumStocks {
		return errors.Wrapf(market.ErrInvalidReference, "stock %d of %d", o.Stock, r.hdr.NumStocks)
	}
	if o.Price <= 0 || o.Qty <= 0 {
		return errors.Wrapf(market.ErrNonPositiveValue, "price %d qty %d", o.Price, o.Qty)
	}
	return nil
}

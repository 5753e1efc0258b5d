package input

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"marketsim/pkg/market"
)

// Mode selects how the order stream is produced.
type Mode string

const (
	// ModeTL reads a literal trade list from the input.
	ModeTL Mode = "TL"
	// ModePR generates a pseudorandom stream from the header parameters.
	ModePR Mode = "PR"
)

// Header is the preamble of every input file. The PR fields are only
// present in PR mode.
type Header struct {
	Comment    string
	Mode       Mode
	NumTraders uint32
	NumStocks  uint32

	Seed        int64
	NumOrders   uint64
	ArrivalRate uint32
}

// ReadHeader consumes the header lines from sc:
//
//	COMMENT: <ignored>
//	MODE: TL|PR
//	NUM_TRADERS: <n>
//	NUM_STOCKS: <m>
//
// followed, in PR mode, by RANDOM_SEED, NUMBER_OF_ORDERS and ARRIVAL_RATE.
func ReadHeader(sc *bufio.Scanner) (Header, error) {
	var h Header

	comment, err := headerValue(sc, "COMMENT")
	if err != nil {
		return h, err
	}
	h.Comment = comment

	mode, err := headerValue(sc, "MODE")
	if err != nil {
		return h, err
	}
	switch Mode(mode) {
	case ModeTL, ModePR:
		h.Mode = Mode(mode)
	default:
		return h, errors.Wrapf(market.ErrMalformedInput, "unknown mode %q", mode)
	}

	if h.NumTraders, err = headerUint32(sc, "NUM_TRADERS"); err != nil {
		return h, err
	}
	if h.NumStocks, err = headerUint32(sc, "NUM_STOCKS"); err != nil {
		return h, err
	}
	if h.NumTraders == 0 || h.NumStocks == 0 {
		return h, errors.Wrap(market.ErrMalformedInput, "trader and stock counts must be at least 1")
	}

	if h.Mode == ModePR {
		seed, err := headerValue(sc, "RANDOM_SEED")
		if err != nil {
			return h, err
		}
		if h.Seed, err = strconv.ParseInt(seed, 10, 64); err != nil {
			return h, errors.Wrapf(market.ErrMalformedInput, "RANDOM_SEED %q", seed)
		}
		orders, err := headerValue(sc, "NUMBER_OF_ORDERS")
		if err != nil {
			return h, err
		}
		if h.NumOrders, err = strconv.ParseUint(orders, 10, 64); err != nil {
			return h, errors.Wrapf(market.ErrMalformedInput, "NUMBER_OF_ORDERS %q", orders)
		}
		if h.ArrivalRate, err = headerUint32(sc, "ARRIVAL_RATE"); err != nil {
			return h, err
		}
	}
	return h, nil
}

func headerValue(sc *bufio.Scanner, key string) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", errors.Wrap(err, "read header")
		}
		return "", errors.Wrapf(market.ErrMalformedInput, "missing header line %s", key)
	}
	line := sc.Text()
	prefix := key + ":"
	if !strings.HasPrefix(line, prefix) {
		return "", errors.Wrapf(market.ErrMalformedInput, "expected %s line, got %q", key, line)
	}
	return strings.TrimSpace(strings.TrimPrefix(line, prefix)), nil
}

func headerUint32(sc *bufio.Scanner, key string) (uint32, error) {
	val, err := headerValue(sc, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(market.ErrMalformedInput, "%s %q", key, val)
	}
	return uint32(n), nil
}

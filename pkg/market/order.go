package market

type Side int8

const (
	Buy  Side = 1
	Sell Side = -1
)

func (s Side) String() string {
	if s == Buy {
		return "BUY"
	}
	return "SELL"
}

// Order is a single buy or sell instruction. Seq is assigned by the engine
// at arrival and is the sole tie-breaker between equal prices.
type Order struct {
	Timestamp uint32
	Trader    uint32
	Stock     uint32
	Side      Side
	Price     int64 // whole dollars
	Qty       int64 // shares remaining
	Seq       uint64
}

// Trade is one settlement between a resting order and an incoming one.
type Trade struct {
	Buyer  uint32
	Seller uint32
	Stock  uint32
	Qty    int64
	Price  int64
}

package market

import "container/heap"

// Book holds the resting orders for one stock, one priority queue per side.
// Partially filled orders are decremented in place at the top of their queue;
// price and seq never change, so heap order is preserved.
type Book struct {
	buys  buyQueue
	sells sellQueue
}

func NewBook() *Book {
	b := &Book{}
	heap.Init(&b.buys)
	heap.Init(&b.sells)
	return b
}

func (b *Book) Insert(o *Order) {
	if o.Side == Buy {
		heap.Push(&b.buys, o)
	} else {
		heap.Push(&b.sells, o)
	}
}

// BestBuy returns the resting buy with the highest price (earliest arrival
// on ties), or nil.
func (b *Book) BestBuy() *Order { return b.buys.Peek() }

// BestSell returns the resting sell with the lowest price (earliest arrival
// on ties), or nil.
func (b *Book) BestSell() *Order { return b.sells.Peek() }

func (b *Book) PopBuy() *Order  { return heap.Pop(&b.buys).(*Order) }
func (b *Book) PopSell() *Order { return heap.Pop(&b.sells).(*Order) }

// Crossed reports whether the best buy and best sell overlap. It must be
// false whenever control is outside the matching loop.
func (b *Book) Crossed() bool {
	buy, sell := b.buys.Peek(), b.sells.Peek()
	return buy != nil && sell != nil && sell.Price <= buy.Price
}

func (b *Book) BuyDepth() int  { return len(b.buys) }
func (b *Book) SellDepth() int { return len(b.sells) }

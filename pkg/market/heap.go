package market

// buyQueue implements heap.Interface for resting buy orders: highest price on
// top, earlier arrival winning ties.
// Use container/heap to manipulate (Init, Push, Pop).
type buyQueue []*Order

func (q buyQueue) Len() int { return len(q) }
func (q buyQueue) Less(i, j int) bool {
	if q[i].Price == q[j].Price {
		return q[i].Seq < q[j].Seq
	}
	return q[i].Price > q[j].Price
}
func (q buyQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *buyQueue) Push(x interface{}) {
	*q = append(*q, x.(*Order))
}

func (q *buyQueue) Pop() interface{} {
	old := *q
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*q = old[0 : n-1]
	return x
}

// Peek returns the top order without removing it, nil if empty.
func (q buyQueue) Peek() *Order {
	if len(q) == 0 {
		return nil
	}
	return q[0]
}

// sellQueue implements heap.Interface for resting sell orders: lowest price
// on top, earlier arrival winning ties.
type sellQueue []*Order

func (q sellQueue) Len() int { return len(q) }
func (q sellQueue) Less(i, j int) bool {
	if q[i].Price == q[j].Price {
		return q[i].Seq < q[j].Seq
	}
	return q[i].Price < q[j].Price
}
func (q sellQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *sellQueue) Push(x interface{}) {
	*q = append(*q, x.(*Order))
}

func (q *sellQueue) Pop() interface{} {
	old := *q
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*q = old[0 : n-1]
	return x
}

// Peek returns the top order without removing it, nil if empty.
func (q sellQueue) Peek() *Order {
	if len(q) == 0 {
		return nil
	}
	return q[0]
}

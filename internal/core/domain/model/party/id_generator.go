package party

import "sync/atomic"

// CustomerIDGenerator hands out customer ids.
type CustomerIDGenerator interface {
	NextCustomerID() int
}

// SequenceGenerator returns consecutive ids starting at a given value.
// It is safe for concurrent use.
type SequenceGenerator struct {
	next atomic.Int64
}

var _ CustomerIDGenerator = (*SequenceGenerator)(nil)

// NewSequenceGenerator returns a generator whose first id is start.
// Values lower than 1 start the sequence at 1.
func NewSequenceGenerator(start int) *SequenceGenerator {
	if start < 1 {
		start = 1
	}
	g := &SequenceGenerator{}
	g.next.Store(int64(start))
	return g
}

func (g *SequenceGenerator) NextCustomerID() int {
	return int(g.next.Add(1) - 1)
}

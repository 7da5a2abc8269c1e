package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Cart is the single source of truth for one shopper's in-progress order.
// All mutation goes through AddItem / RemoveItem / Clear; totals and item
// counts are recomputed on read, never cached. The store hands the same
// *Cart to every request in a session, so every exported method takes the
// cart's own lock.
type Cart struct {
	mu     sync.Mutex
	lines  []Line
	coupon Coupon
}

func New() *Cart {
	return &Cart{coupon: Coupon{State: CouponNone}}
}

// AddItem merges the candidate into an existing line with the same merge
// key, or appends it. Quantities are expected to be validated (> 0) by
// the caller.
func (c *Cart) AddItem(l Line) {
	if l.LineID == "" {
		l.LineID = MergeKey(l)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].LineID == l.LineID {
			c.lines[i].Quantity += l.Quantity
			return
		}
	}
	c.lines = append(c.lines, l)
}

// RemoveItem drops the first line matching lineID. Absent ids are a no-op,
// not an error.
func (c *Cart) RemoveItem(lineID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].LineID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// ItemCount is the sum of quantities across all lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// HasCategory reports whether any line belongs to the given category.
func (c *Cart) HasCategory(category string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, l := range c.lines {
		if l.Category == category {
			return true
		}
	}
	return false
}

// Clear empties the cart and resets the coupon. Used after a successful
// order submission and on sign-in, so guest and authenticated carts never
// mix.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	c.coupon = Coupon{State: CouponNone}
}

// grouped re-merges any duplicate keys left over from add-time. Normally
// AddItem already guarantees uniqueness; this keeps Total correct even if
// lines were loaded from elsewhere. Caller must hold c.mu.
func (c *Cart) grouped() []Line {
	out := make([]Line, 0, len(c.lines))
	index := make(map[string]int, len(c.lines))

	for _, l := range c.lines {
		if i, ok := index[l.LineID]; ok {
			out[i].Quantity += l.Quantity
			continue
		}
		index[l.LineID] = len(out)
		out = append(out, l)
	}
	return out
}

// Total sums LineTotal over all lines, discounting at most one line per
// coupon reward category. First match in insertion order wins; when the
// coupon is pinned to a specific line, only that line is discounted.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	discountSpent := false

	for _, l := range c.grouped() {
		discounted := false
		if !discountSpent && c.coupon.Discounts(l) {
			discounted = true
			discountSpent = true
		}
		total = total.Add(LineTotal(l, discounted))
	}
	return total
}

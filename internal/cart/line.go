package cart

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Addition is one paid extra attached to a line (e.g. "extra tahini").
type Addition struct {
	Name  string          `json:"addition"`
	Price decimal.Decimal `json:"price"`
}

// Line is one distinct product configuration and its quantity.
// Prices are captured at add-time; the cart is a price snapshot and does
// not follow later catalog changes.
type Line struct {
	LineID     string          `json:"line_id"`
	ProductRef string          `json:"product"` // catalog id, empty for local-only lines
	Title      string          `json:"title"`
	UnitPrice  decimal.Decimal `json:"price"`
	Image      string          `json:"img"`
	Quantity   int             `json:"quantity"` // units, or grams when Weighted
	Weighted   bool            `json:"is_weighted"`
	Vegetables []string        `json:"vegetables"`
	Additions  []Addition      `json:"additions"`
	Comment    string          `json:"comment"`
	Category   string          `json:"category"`
}

// Namespace for deterministic line ids. Two add-to-cart actions with the
// same configuration must land on the same id so they accumulate instead
// of duplicating.
var mergeKeyNamespace = uuid.MustParse("9b1c6f0e-2d5a-4a38-8c0d-7f41e3b2a9d4")

// MergeKey derives the line identity from the canonical encoding of
// (product, title, unit price, weighted, sorted vegetables, sorted
// additions, comment). Title and price keep local-only lines (no
// ProductRef) apart, and the cart is a price snapshot, so the same
// product at a changed price is a new line. Quantity is deliberately
// excluded so repeated adds merge.
func MergeKey(l Line) string {
	veg := append([]string(nil), l.Vegetables...)
	sort.Strings(veg)

	adds := make([]string, 0, len(l.Additions))
	for _, a := range l.Additions {
		adds = append(adds, a.Name+"="+a.Price.String())
	}
	sort.Strings(adds)

	canonical := strings.Join([]string{
		l.ProductRef,
		l.Title,
		l.UnitPrice.String(),
		fmt.Sprintf("w=%t", l.Weighted),
		strings.Join(veg, ","),
		strings.Join(adds, ","),
		l.Comment,
	}, "|")

	return uuid.NewSHA1(mergeKeyNamespace, []byte(canonical)).String()
}

// LineTotal prices a single line. A discounted line contributes its
// additions only; the base price is zeroed by the coupon.
//
// Weighted items are priced per 100 grams, so a 300g line at 22 comes to 66.
func LineTotal(l Line, discounted bool) decimal.Decimal {
	unit := l.UnitPrice
	if discounted {
		unit = decimal.Zero
	}

	additions := decimal.Zero
	for _, a := range l.Additions {
		additions = additions.Add(a.Price)
	}

	qty := decimal.NewFromInt(int64(l.Quantity))
	if l.Weighted {
		return unit.Div(decimal.NewFromInt(100)).Mul(qty).Add(additions)
	}
	return unit.Add(additions).Mul(qty)
}

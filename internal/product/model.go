package product

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/shopspring/decimal"
)

// Option is a configurable paid extra on a product.
type Option struct {
	Name  string          `json:"addition"`
	Price decimal.Decimal `json:"price"`
}

// Product is one menu entry. Weighted products are priced per 100 grams.
type Product struct {
	ID          string          `json:"_id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Weighted    bool            `json:"is_weighted"`
	Vegetables  []string        `json:"vegetables,omitempty"`
	Additions   []Option        `json:"additions,omitempty"`
	Image       string          `json:"img,omitempty"`
	Available   bool            `json:"available"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewID returns a 24-char hex id, the format the order payload requires
// for its product references.
func NewID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

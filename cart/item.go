package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/storefront/model"
)

// DefaultAppName namespaces cart keys.
const DefaultAppName = "movistore"

// Item is a cart line.
type Item struct {
	Product  model.Product `json:"product"`
	Quantity int           `json:"quantity"`
}

// Subtotal returns price × quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// StorageKey returns the persisted key of a user's cart.
func StorageKey(app string, userID int64) string {
	return fmt.Sprintf("@%s_cart_%d", app, userID)
}

// normalize merges duplicate products and drops non-positive quantities.
func normalize(items []Item) []Item {
	out := make([]Item, 0, len(items))
	index := make(map[int64]int, len(items))
	for _, it := range items {
		if it.Quantity < 1 {
			continue
		}
		if i, ok := index[it.Product.ID]; ok {
			out[i].Quantity += it.Quantity
			continue
		}
		index[it.Product.ID] = len(out)
		out = append(out, it)
	}
	return out
}

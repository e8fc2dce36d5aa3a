package cart

import (
	"time"

	"github.com/loja-labs/backend-loja/internal/pricing"
)

// MaxQuantityPerItem caps how many units of a single line a cart holds.
const MaxQuantityPerItem = 10

// LineItem is one product (optionally a variant of it) and its quantity
// within the cart. Price and display fields are snapshotted when the
// item is added and never re-synced with the catalog.
type LineItem struct {
	ID                string         `json:"id"`
	ProductID         string         `json:"productId"`
	VariantID         string         `json:"variantId,omitempty"`
	Name              string         `json:"name"`
	VariantName       string         `json:"variantName,omitempty"`
	UnitPrice         pricing.Money  `json:"unitPrice"`
	OriginalUnitPrice *pricing.Money `json:"originalUnitPrice,omitempty"`
	Qty               int            `json:"qty"`
	Image             string         `json:"image,omitempty"`
	AddedAt           time.Time      `json:"addedAt"`
}

// LineItemID derives the composite line identifier from a product and
// optional variant.
func LineItemID(productID, variantID string) string {
	if variantID == "" {
		return productID
	}
	return productID + "-" + variantID
}

package cart

import "errors"

// Business-rule violations surfaced by cart operations. All of them are
// handled locally: the store reports them through the Notifier and the
// caller decides whether to map them to an HTTP response. None are
// fatal; failed mutations leave prior state intact.
var (
	// ErrCartNotFound indicates the requested cart does not exist.
	ErrCartNotFound = errors.New("cart not found")
	// ErrInvalidProduct is returned when the product reference is missing or unknown.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrOutOfStock is returned when the product cannot be added because it has no stock.
	ErrOutOfStock = errors.New("product out of stock")
	// ErrQuantityExceeded is returned when a line would exceed the per-item maximum.
	ErrQuantityExceeded = errors.New("quantity limit exceeded")
	// ErrItemNotFound indicates no cart line matches the given item id.
	ErrItemNotFound = errors.New("cart item not found")
	// ErrUnknownCoupon is returned when the code has no rule in the catalog.
	ErrUnknownCoupon = errors.New("unknown coupon code")
	// ErrMinimumNotMet is returned when the subtotal is below the coupon's minimum.
	ErrMinimumNotMet = errors.New("coupon minimum not met")
	// ErrInvalidZipCode is returned when the destination CEP is malformed.
	ErrInvalidZipCode = errors.New("invalid zip code")
)

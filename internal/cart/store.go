package cart

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/loja-labs/backend-loja/internal/catalog"
	"github.com/loja-labs/backend-loja/internal/coupon"
	"github.com/loja-labs/backend-loja/internal/currency"
	"github.com/loja-labs/backend-loja/internal/events"
	"github.com/loja-labs/backend-loja/internal/notify"
	"github.com/loja-labs/backend-loja/internal/pricing"
	"github.com/loja-labs/backend-loja/internal/shipping"
	"github.com/loja-labs/backend-loja/internal/storage"
)

// ProductGetter is the catalog collaborator consumed by the store. The
// catalog owns product lifecycle; the cart only references it to
// validate stock and snapshot display data.
type ProductGetter interface {
	GetProductByID(ctx context.Context, id string) (catalog.Product, bool)
}

// Store owns the state of a single cart: its line items, the applied
// coupon code and the shipping estimate. Every mutation runs the same
// pipeline: mutate, recompute totals, persist best-effort, publish a
// change event and toast the user. Totals are derived state and never
// set by callers.
//
// Shipping policy: a CEP quote, once resolved, overrides the flat
// threshold rule until the item list next changes. Item mutations clear
// the override; coupon operations keep it (the physical shipment is
// unchanged). Whenever the subtotal meets the free-shipping threshold
// the cost is zero regardless of any override.
type Store struct {
	CartID   string
	Catalog  ProductGetter
	Storage  storage.Store
	Notifier notify.Notifier
	Events   *events.Bus
	Quoter   shipping.Quoter
	Logger   zerolog.Logger
	Now      func() time.Time

	mu            sync.Mutex
	items         []LineItem
	appliedCoupon string
	shippingState pricing.Shipping
	summary       pricing.Summary

	// quoteGen versions in-flight shipping quotes so a mutation can
	// supersede a pending one instead of racing it.
	quoteGen    uint64
	cancelQuote context.CancelFunc
}

func (s *Store) now() time.Time {
	if s != nil && s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Store) itemsKey() string  { return "cart:" + s.CartID + ":items" }
func (s *Store) couponKey() string { return "cart:" + s.CartID + ":coupon" }

// AddItem adds qty units of a product (or one of its variants) to the
// cart, incrementing an existing line when present. Quantity defaults
// to one; the resulting line may never exceed MaxQuantityPerItem. The
// product's price and display fields are frozen at this instant.
func (s *Store) AddItem(ctx context.Context, productID, variantID string, qty int) error {
	if qty <= 0 {
		qty = 1
	}
	if qty > MaxQuantityPerItem {
		s.toast(ctx, notify.LevelWarning, "Quantidade máxima de 10 unidades por item")
		return ErrQuantityExceeded
	}
	if s.Catalog == nil || productID == "" {
		s.toast(ctx, notify.LevelError, "Produto indisponível")
		return ErrInvalidProduct
	}
	product, ok := s.Catalog.GetProductByID(ctx, productID)
	if !ok {
		s.toast(ctx, notify.LevelError, "Produto indisponível")
		return ErrInvalidProduct
	}
	if !product.InStock {
		s.toast(ctx, notify.LevelError, "Produto esgotado")
		return ErrOutOfStock
	}
	unitPrice := product.Price
	variantName := ""
	if variantID != "" {
		variant, ok := product.Variant(variantID)
		if !ok {
			s.toast(ctx, notify.LevelError, "Produto indisponível")
			return ErrInvalidProduct
		}
		unitPrice = variant.Price
		variantName = variant.Name
	}

	lineID := LineItemID(productID, variantID)

	s.mu.Lock()
	if idx := s.indexOfLocked(lineID); idx >= 0 {
		if s.items[idx].Qty+qty > MaxQuantityPerItem {
			s.mu.Unlock()
			s.toast(ctx, notify.LevelWarning, "Quantidade máxima de 10 unidades por item")
			return ErrQuantityExceeded
		}
		s.items[idx].Qty += qty
	} else {
		s.items = append(s.items, LineItem{
			ID:                lineID,
			ProductID:         productID,
			VariantID:         variantID,
			Name:              product.Name,
			VariantName:       variantName,
			UnitPrice:         unitPrice,
			OriginalUnitPrice: product.OriginalPrice,
			Qty:               qty,
			Image:             product.Image,
			AddedAt:           s.now(),
		})
	}
	s.invalidateQuoteLocked()
	s.recomputeLocked()
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.publish(events.TopicCartUpdated)
	s.publish(events.TopicCartBumped)
	s.toast(ctx, notify.LevelSuccess, product.Name+" adicionado ao carrinho")
	return nil
}

// RemoveItem deletes the line with the given id.
func (s *Store) RemoveItem(ctx context.Context, itemID string) error {
	s.mu.Lock()
	idx := s.indexOfLocked(itemID)
	if idx < 0 {
		s.mu.Unlock()
		s.toast(ctx, notify.LevelError, "Item não encontrado no carrinho")
		return ErrItemNotFound
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.invalidateQuoteLocked()
	s.recomputeLocked()
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.publish(events.TopicCartUpdated)
	s.toast(ctx, notify.LevelInfo, "Item removido do carrinho")
	return nil
}

// UpdateQuantity sets the quantity for a line. A non-positive quantity
// removes the line entirely; that equivalence is intentional, not an
// error.
func (s *Store) UpdateQuantity(ctx context.Context, itemID string, qty int) error {
	if qty <= 0 {
		return s.RemoveItem(ctx, itemID)
	}
	if qty > MaxQuantityPerItem {
		s.toast(ctx, notify.LevelWarning, "Quantidade máxima de 10 unidades por item")
		return ErrQuantityExceeded
	}
	s.mu.Lock()
	idx := s.indexOfLocked(itemID)
	if idx < 0 {
		s.mu.Unlock()
		s.toast(ctx, notify.LevelError, "Item não encontrado no carrinho")
		return ErrItemNotFound
	}
	s.items[idx].Qty = qty
	s.invalidateQuoteLocked()
	s.recomputeLocked()
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.publish(events.TopicCartUpdated)
	return nil
}

// Clear empties the cart and drops any applied coupon.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	s.appliedCoupon = ""
	s.invalidateQuoteLocked()
	s.recomputeLocked()
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.publish(events.TopicCartUpdated)
	s.toast(ctx, notify.LevelInfo, "Carrinho esvaziado")
}

// ApplyCoupon validates and activates a coupon code. At most one coupon
// is active; applying a new one replaces the previous. The minimum-spend
// gate is checked here and again on every later recompute.
func (s *Store) ApplyCoupon(ctx context.Context, code string) error {
	rule, ok := coupon.Lookup(code)
	if !ok {
		s.toast(ctx, notify.LevelError, "Cupom inválido")
		return ErrUnknownCoupon
	}

	s.mu.Lock()
	subtotal := pricing.Subtotal(s.pricingItemsLocked())
	if subtotal < rule.MinSubtotal {
		s.mu.Unlock()
		s.toast(ctx, notify.LevelWarning, "Valor mínimo para este cupom: "+currency.FormatBRL(rule.MinSubtotal))
		return ErrMinimumNotMet
	}
	s.appliedCoupon = rule.Code
	s.recomputeLocked()
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.publish(events.TopicCartUpdated)
	s.publish(events.TopicCouponApplied)
	s.toast(ctx, notify.LevelSuccess, "Cupom "+rule.Code+" aplicado")
	return nil
}

// RemoveCoupon clears the applied coupon. Idempotent: removing when no
// coupon is active still recomputes, persists and notifies.
func (s *Store) RemoveCoupon(ctx context.Context) {
	s.mu.Lock()
	s.appliedCoupon = ""
	s.recomputeLocked()
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.publish(events.TopicCartUpdated)
	s.toast(ctx, notify.LevelInfo, "Cupom removido")
}

// QuoteShipping validates the destination CEP and starts an asynchronous
// rate lookup. The resolved cost becomes the shipping override unless a
// cart mutation supersedes the quote first.
func (s *Store) QuoteShipping(ctx context.Context, cep string) error {
	if !shipping.ValidCEP(cep) {
		s.toast(ctx, notify.LevelError, "CEP inválido")
		return ErrInvalidZipCode
	}
	quoter := s.Quoter
	if quoter == nil {
		return errors.New("shipping quoter not configured")
	}

	s.mu.Lock()
	s.quoteGen++
	gen := s.quoteGen
	if s.cancelQuote != nil {
		s.cancelQuote()
	}
	qctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancelQuote = cancel
	s.mu.Unlock()

	go s.resolveQuote(qctx, quoter, gen, cep)
	return nil
}

func (s *Store) resolveQuote(ctx context.Context, quoter shipping.Quoter, gen uint64, cep string) {
	cost, err := quoter.Quote(ctx, cep)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.Logger.Warn().Err(err).Str("cart_id", s.CartID).Msg("shipping quote failed")
		}
		return
	}

	s.mu.Lock()
	if gen != s.quoteGen {
		// A mutation superseded this quote while it was in flight.
		s.mu.Unlock()
		return
	}
	s.cancelQuote = nil
	subtotal := pricing.Subtotal(s.pricingItemsLocked())
	if subtotal >= pricing.FreeShippingThreshold {
		cost = 0
	}
	s.shippingState = pricing.Shipping{Override: true, OverrideCost: cost}
	s.recomputeLocked()
	s.persistLocked(context.Background())
	s.mu.Unlock()

	s.publish(events.TopicQuoteResolved)
	s.publish(events.TopicCartUpdated)
	if cost == 0 {
		s.toast(ctx, notify.LevelSuccess, "Frete grátis para o seu CEP")
	} else {
		s.toast(ctx, notify.LevelInfo, "Frete estimado: "+currency.FormatBRL(cost))
	}
}

// Snapshot returns a consistent copy of the cart for rendering.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return Snapshot{
		CartID:         s.CartID,
		Items:          items,
		Coupon:         s.appliedCoupon,
		Summary:        s.summary,
		ShippingQuoted: s.shippingState.Override,
	}
}

// Snapshot is the read model handed to the HTTP layer and the UI hook.
type Snapshot struct {
	CartID         string          `json:"id"`
	Items          []LineItem      `json:"items"`
	Coupon         string          `json:"coupon,omitempty"`
	Summary        pricing.Summary `json:"pricing"`
	ShippingQuoted bool            `json:"shippingQuoted"`
}

// restore loads persisted state from storage. Storage failures are
// logged and leave the cart empty; the session continues in memory.
func (s *Store) restore(ctx context.Context) bool {
	var (
		items []LineItem
		code  string
		found bool
	)
	if s.Storage != nil {
		ok, err := s.Storage.LoadJSON(ctx, s.itemsKey(), &items)
		if err != nil {
			s.Logger.Warn().Err(err).Str("cart_id", s.CartID).Msg("restore cart items")
		}
		found = found || ok
		ok, err = s.Storage.LoadJSON(ctx, s.couponKey(), &code)
		if err != nil {
			s.Logger.Warn().Err(err).Str("cart_id", s.CartID).Msg("restore cart coupon")
		}
		found = found || ok
	}
	s.mu.Lock()
	s.items = items
	s.appliedCoupon = coupon.Normalize(code)
	s.recomputeLocked()
	s.mu.Unlock()
	return found
}

func (s *Store) indexOfLocked(itemID string) int {
	for i := range s.items {
		if s.items[i].ID == itemID {
			return i
		}
	}
	return -1
}

func (s *Store) pricingItemsLocked() []pricing.Item {
	out := make([]pricing.Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, pricing.Item{Qty: it.Qty, UnitPrice: it.UnitPrice})
	}
	return out
}

// recomputeLocked derives subtotal, shipping, discount and total from
// scratch. The coupon gate is re-validated on every pass: a coupon whose
// minimum is no longer met contributes zero while staying applied.
func (s *Store) recomputeLocked() {
	items := s.pricingItemsLocked()
	var discount pricing.Money
	if s.appliedCoupon != "" {
		if rule, ok := coupon.Lookup(s.appliedCoupon); ok {
			discount = rule.Discount(pricing.Subtotal(items))
		}
	}
	s.summary = pricing.Compute(items, discount, s.shippingState)
}

// invalidateQuoteLocked drops the shipping override and supersedes any
// in-flight quote. Called from every item mutation.
func (s *Store) invalidateQuoteLocked() {
	s.quoteGen++
	if s.cancelQuote != nil {
		s.cancelQuote()
		s.cancelQuote = nil
	}
	s.shippingState = pricing.Shipping{}
}

// persistLocked writes the two JSON keys best-effort. Failures are
// logged, never propagated: in-memory state stays authoritative.
func (s *Store) persistLocked(ctx context.Context) {
	if s.Storage == nil {
		return
	}
	if err := s.Storage.SaveJSON(ctx, s.itemsKey(), s.items); err != nil {
		s.Logger.Warn().Err(err).Str("cart_id", s.CartID).Msg("persist cart items")
	}
	if err := s.Storage.SaveJSON(ctx, s.couponKey(), s.appliedCoupon); err != nil {
		s.Logger.Warn().Err(err).Str("cart_id", s.CartID).Msg("persist cart coupon")
	}
}

func (s *Store) publish(topic string) {
	s.Events.Publish(events.Event{Topic: topic, CartID: s.CartID, OccurredAt: s.now()})
}

func (s *Store) toast(ctx context.Context, level notify.Level, message string) {
	if s.Notifier == nil {
		return
	}
	s.Notifier.Notify(ctx, level, message)
}

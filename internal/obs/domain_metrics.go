package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/loja-labs/backend-loja/internal/events"
)

var (
	domainOnce sync.Once

	// CartUpdatesTotal counts cart state changes.
	CartUpdatesTotal prometheus.Counter
	// CartItemsAddedTotal counts successful item additions.
	CartItemsAddedTotal prometheus.Counter
	// CouponsAppliedTotal counts coupon activations.
	CouponsAppliedTotal prometheus.Counter
	// ShippingQuotesResolvedTotal counts shipping quotes that completed.
	ShippingQuotesResolvedTotal prometheus.Counter
)

// MustRegisterDomainMetrics initialises and registers cart-domain Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		CartUpdatesTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_updates_total",
			Help:      "Count of cart state changes.",
		})
		CartItemsAddedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_items_added_total",
			Help:      "Count of items added to carts.",
		})
		CouponsAppliedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coupons_applied_total",
			Help:      "Count of coupon codes activated on carts.",
		})
		ShippingQuotesResolvedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shipping_quotes_resolved_total",
			Help:      "Count of shipping quotes that resolved.",
		})

		registerDomainCollector(reg, CartUpdatesTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				CartUpdatesTotal = v
			}
		})
		registerDomainCollector(reg, CartItemsAddedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				CartItemsAddedTotal = v
			}
		})
		registerDomainCollector(reg, CouponsAppliedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				CouponsAppliedTotal = v
			}
		})
		registerDomainCollector(reg, ShippingQuotesResolvedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				ShippingQuotesResolvedTotal = v
			}
		})
	})
}

// ObserveCartEvents subscribes the domain counters to the cart event bus.
func ObserveCartEvents(bus *events.Bus) {
	if bus == nil {
		return
	}
	bus.Subscribe(events.TopicCartUpdated, func(events.Event) {
		if CartUpdatesTotal != nil {
			CartUpdatesTotal.Inc()
		}
	})
	bus.Subscribe(events.TopicCartBumped, func(events.Event) {
		if CartItemsAddedTotal != nil {
			CartItemsAddedTotal.Inc()
		}
	})
	bus.Subscribe(events.TopicCouponApplied, func(events.Event) {
		if CouponsAppliedTotal != nil {
			CouponsAppliedTotal.Inc()
		}
	})
	bus.Subscribe(events.TopicQuoteResolved, func(events.Event) {
		if ShippingQuotesResolvedTotal != nil {
			ShippingQuotesResolvedTotal.Inc()
		}
	})
}

func registerDomainCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}

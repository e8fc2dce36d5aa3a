package events

// Topic constants for cart state changes published on the bus.
const (
	// TopicCartUpdated fires after every cart state change; UI layers
	// subscribe to it to re-render badge, sidebar and summary.
	TopicCartUpdated = "cart.updated"
	// TopicCartBumped fires when an item lands in the cart, driving the
	// badge bump animation.
	TopicCartBumped = "cart.bumped"
	// TopicCouponApplied fires when a coupon code is activated.
	TopicCouponApplied = "cart.coupon_applied"
	// TopicQuoteResolved fires when a shipping quote completes.
	TopicQuoteResolved = "cart.quote_resolved"
)

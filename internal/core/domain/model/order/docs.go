// Package order implements the order aggregate and the fulfillment state
// machine. An order is the immutable result of converting a cart: line items,
// totals, payment method, and delivery details are frozen at conversion, and
// only the fulfillment status (plus the completion stamps it carries) changes
// afterwards.
//
// The Status type is the single authority for transition legality. Every
// caller, whether an HTTP handler, a background job, or a test, goes through
// the same table; a transition not in the table fails with
// ErrIllegalTransition and leaves the aggregate unchanged.
package order

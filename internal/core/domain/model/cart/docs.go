// Package cart implements the cart aggregate: the mutable set of candidate
// line items a customer accumulates before checkout, together with the
// pricing rules that turn those lines into monetary totals.
//
// The aggregate enforces quantity invariants (every line has quantity >= 1),
// keeps one line per catalog item, and prices the cart with a flat 18% tax
// and a flat shipping fee waived at the free-shipping threshold.
package cart

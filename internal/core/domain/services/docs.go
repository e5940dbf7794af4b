// Package services contains stateless domain services that coordinate rules
// spanning the order aggregate, such as the delivery verification gateway
// consulted before the final fulfillment transition.
package services

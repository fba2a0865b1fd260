// Package checkout turns the cart into an order.
//
// A Flow validates the cart, places the order through the orders service and
// clears the cart once the order exists. Outcomes are reported both as
// return values and as notifications.
package checkout

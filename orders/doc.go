// Package orders provides the orders REST service and the order list.
//
// The list is scoped by role: customers only ever see their own orders, and a
// status filter of StatusAll sends no status to the server.
package orders

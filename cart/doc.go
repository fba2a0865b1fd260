// Package cart keeps the signed-in user's cart.
//
// The cart is client-local. Each user's items are persisted as JSON under
// "@<app>_cart_<userId>" and loaded when the session's user changes; signing
// out empties the in-memory cart. All mutations are rejected while signed
// out, and mutations issued while a partition is still loading wait for the
// load to finish so stored items are never overwritten.
//
// The manager learns about the session only through Sync, usually wired to
// auth.StateChanged events via EventHandler.
package cart

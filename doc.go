// Package storefront is the client-side data and session layer of a mobile
// storefront backed by a REST API.
//
// An App wires the pieces together from a Config:
//
//   - auth.Manager owns the session and persists the bearer token
//   - cart.Manager keeps a per-user cart in the local store
//   - stores.Manager remembers the selected store
//   - products, categories, stores and orders services talk to the API
//   - pagination lists give each resource a debounced, filterable view
//   - checkout.Flow turns the cart into an order
//   - notify.Center delivers localized, self-dismissing notifications
//
// Usage:
//
//	app, err := storefront.NewFromEnv(ctx)
//	if err != nil {
//		return err
//	}
//	defer app.Close()
//
//	if err := app.Bootstrap(ctx); err != nil {
//		return err
//	}
//	list := app.ProductList()
//	defer list.Close()
//	page := list.Fetch(ctx)
//
// Session changes reach the cart through a synchronous event bus, so a login
// or logout is reflected in the cart before the call returns.
package storefront

// Package pagination implements the page/limit/filter state machine shared by
// every list-backed feature.
//
// A List is parameterized by item type T and a comparable filter type F and
// is driven by a FetchFunc. It keeps the server's pagination counters
// verbatim, resets to page 1 on any filter change, debounces filter-driven
// fetches and drops results from fetches superseded by a newer one. Failures
// never escape: they land in State.Err, empty the items and raise an error
// notification.
//
//	list := pagination.New(productsFetch,
//		pagination.WithLimit(10),
//		pagination.WithFilter(products.Filter{}),
//		pagination.WithNotifier(center),
//	)
//	defer list.Close()
//
//	state := list.Fetch(ctx)
//	list.SetFilter(ctx, products.Filter{SearchTerm: "shoe"}) // debounced
package pagination

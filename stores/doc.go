// Package stores provides the stores REST service, the list used by store
// screens and Manager, which tracks the store whose stock product queries are
// scoped to.
//
// The selected store id is persisted under "selectedStoreId". After each
// Fetch a persisted id that no longer matches a returned store is replaced by
// the first store in server order.
package stores

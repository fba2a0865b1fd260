// Package sqlite provides a file-backed kv.Store on top of modernc.org/sqlite,
// suitable as the device-local persistence of a single storefront client.
//
//	store, err := sqlite.Open("storefront.db")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer store.Close()
//
//	_ = store.Set(ctx, "jwtToken", token)
//
// The database runs in WAL mode and the schema is created on Open.
package sqlite

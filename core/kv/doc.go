// Package kv provides the device-local key-value persistence used by the
// storefront client for its session token, selected store and per-user carts.
//
// Every logical key is owned by exactly one manager: the auth manager owns the
// token key, the store selection manager owns the selected store key and the
// cart manager owns the per-user cart keys. No manager writes another's key.
//
// # Implementations
//
//   - Memory: in-process map, used in tests and for throwaway sessions
//   - integration/kv/sqlite: file-backed store for a single device
//   - integration/kv/redis: Redis-backed store shared by several processes
//
// Stores can be partitioned per device with Scoped:
//
//	store := kv.Scoped(sqliteStore, deviceID)
//	_ = store.Set(ctx, "jwtToken", token) // stored as "device:<id>:jwtToken"
//
// Missing keys are reported with ErrNotFound so callers can distinguish an
// absent value from a storage failure:
//
//	token, err := store.Get(ctx, "jwtToken")
//	if errors.Is(err, kv.ErrNotFound) {
//		// no session persisted
//	}
package kv

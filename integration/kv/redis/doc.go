// Package redis provides a kv.Store backed by Redis.
//
// It is meant for setups where several client processes share persisted state,
// for example a terminal client and a background sync job on the same device.
//
//	client, err := dbredis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	store := redis.New(client, redis.WithPrefix("storefront:"))
package redis

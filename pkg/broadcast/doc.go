// Package broadcast provides generic in-memory fan-out of messages to
// subscribers.
//
//	b := broadcast.NewMemoryBroadcaster[string](16)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	defer sub.Close()
//
//	go func() {
//		for msg := range sub.Receive(ctx) {
//			fmt.Println(msg.Data)
//		}
//	}()
//
//	b.Broadcast(ctx, broadcast.Message[string]{Data: "hello"})
//
// Delivery never blocks the broadcaster: when a subscriber's buffer is full
// the message is dropped for that subscriber only. Subscriptions end when
// their context is cancelled, when Close is called on them, or when the
// broadcaster closes.
package broadcast

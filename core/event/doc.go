// Package event is a synchronous, in-process event bus.
//
// Handlers are registered per event type and run in the publisher's
// goroutine, in registration order. Handler errors are joined and returned
// from Publish; a panicking handler is recovered and reported as an error.
//
//	bus := event.NewBus(event.WithLogger(log))
//	bus.Subscribe(event.NewHandlerFunc(func(ctx context.Context, e auth.StateChanged) error {
//		return cart.Sync(ctx, e.State)
//	}))
//	_ = bus.Publish(ctx, auth.StateChanged{State: state})
//
// Event names are the bare type name of the payload, so payload types must be
// unique across the program.
package event

// Package auth owns the storefront session: the bearer token persisted under
// "jwtToken" and the signed-in user.
//
// Manager restores the session on Bootstrap, replaces it on Login and
// Register, and clears it on Logout or when the API reports 401 through
// Invalidate. Every transition is published as a StateChanged event so other
// managers can react without reaching into auth state.
//
//	m := auth.NewManager(auth.NewService(client), store,
//		auth.WithNotifier(center),
//		auth.WithPublisher(bus),
//	)
//	m.Bootstrap(ctx)
//	<-m.Ready()
package auth

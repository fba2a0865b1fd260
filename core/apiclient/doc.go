// Package apiclient is the JSON/HTTP adapter for the storefront REST API.
//
// Every response is wrapped in an envelope:
//
//	{"status": "success", "message": "...", "data": {...}}
//
// The client decodes data into the caller's target, attaches a bearer token
// from a TokenSource when one is available and maps non-2xx responses to
// *Error. A 401 response invokes the unauthorized handler so the session
// owner can drop its credentials. GET requests are retried with exponential
// backoff on transport failures and 429/502/503/504 responses.
//
//	client, err := apiclient.New(cfg,
//		apiclient.WithTokenSource(authManager),
//		apiclient.WithUnauthorizedHandler(authManager.Invalidate),
//	)
//
//	var out struct {
//		User model.User `json:"user"`
//	}
//	err = client.Get(ctx, "/auth/me", nil, &out)
package apiclient

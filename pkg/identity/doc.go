// Package identity carries the caller identity of a request through its
// context.
//
// The service has no authentication, so an Identity is only what can be
// observed about the caller: the request id and the client address.
// middleware.RequestID builds it; endpoints read it when emitting audit
// events.
//
// # Basic Usage
//
//	id := identity.FromRequest(r, requestID)
//	ctx = identity.Set(ctx, id)
//
//	// later
//	id, ok := identity.Get(ctx)
package identity

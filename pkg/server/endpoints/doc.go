// Package endpoints implements the HTTP handlers of the safetynet API.
//
// Handlers are built by handleX factories that close over the store
// interfaces they need, and are attached to the server router by the
// Register* functions. Mutations answer with {"message": "..."} using the
// collection's outcome text; malformed requests get 400 with
// {"error": "..."}.
package endpoints

// Package middleware holds the HTTP middleware of the safetynet server:
// request identity, structured request logging and Prometheus metrics.
package middleware

// Package logging builds the zap loggers used by the server and CLI.
package logging

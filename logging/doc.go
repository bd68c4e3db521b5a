// Package logging provides a tiny abstraction over structured loggers so
// downstream code can depend on a minimal interface (Logger) while allowing
// users to plug any structured logger. Adapters for slog and zerolog are
// provided.
package logging

// Package session provides core.SessionStore implementations. The in-memory
// store lives here; durable backends (file, sqlite, redis) live in
// subpackages so their drivers stay out of the dependency graph of callers
// that do not need them.
package session

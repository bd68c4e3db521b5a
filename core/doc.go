// Package core provides the foundational domain types and interfaces used by
// agentrun. It defines the core abstractions for:
//
//   - Items (the immutable, ordered units of a conversation trace)
//   - Sessions (append-only, rewindable item logs keyed by session id)
//   - RunContext / ToolContext (scoped execution state for a run and a tool call)
//   - Usage (per-run token accounting)
//   - The pluggable SessionStore seam for durable backends
//
// The package intentionally keeps implementation concerns (persistence, the
// run loop, concrete models and tools) out of scope, exposing small interfaces
// to enable custom backends and extensions.
package core

// Package core provides the foundational domain types and contracts used by
// Fina. It defines the core abstractions for:
//
//   - Messages (immutable, role-tagged conversational turns)
//   - The SessionStore contract for bounded, time-evictable per-key histories
//
// The package intentionally keeps implementation concerns (storage, HTTP
// transport, model providers) out of scope, exposing small interfaces so the
// wiring layer decides which implementations to instantiate.
package core

package core

import "time"

// SessionStore keeps the recent conversation history for each conversation
// key. All operations are total: querying an absent key yields an empty
// history, never an error.
//
// Contract:
//   - Get returns a defensive copy to avoid external mutation
//   - Append lazily creates the session and enforces the per-session cap by
//     dropping the oldest overflow
//   - Sweep evicts every session whose last message is older than
//     now−retention (empty sessions are evicted unconditionally)
//   - Size reports the number of live sessions, for observability.
type SessionStore interface {
	Get(key string) []Message
	Append(key string, msg Message)
	Sweep(retention time.Duration, now time.Time)
	Size() int
}

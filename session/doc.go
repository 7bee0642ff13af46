// Package session houses the concrete implementation of core.SessionStore
// plus the Janitor that periodically evicts stale conversations. The
// interface itself lives in the core package to centralize domain contracts;
// keeping only implementations here prevents higher level packages (server,
// cmd wiring) from depending on concrete storage.
//
// Histories are volatile: the store is rebuilt empty on every process start
// and nothing is ever written to disk.
package session

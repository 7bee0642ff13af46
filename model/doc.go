// Package model defines the provider-agnostic abstractions for invoking
// chat-completion APIs from Fina.
//
// Core goals:
//   - Keep request/response shapes minimal and transport independent
//   - Normalize token usage reporting across vendors
//   - Facilitate lightweight mocking for tests (MockModel)
//
// Providers (OpenAI, Anthropic) implement the Model interface from this
// package so the HTTP layer remains decoupled from vendor SDKs.
package model

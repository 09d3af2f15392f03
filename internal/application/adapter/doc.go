// Package adapter declares the ports the use cases depend on. Persistence,
// caching, messaging, token and email implementations live under
// internal/integration.
package adapter

// Package infrastructure contains concrete implementations of the core
// interfaces: snapshot stores (file, memory, Redis, SQLite), the HTTP
// client used by fetch adapters, and the logrus logger.
package infrastructure

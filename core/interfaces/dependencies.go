// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Store persists raw snapshots keyed by query slug
	Store SnapshotStore

	// HTTPClient provides HTTP request functionality for fetch adapters
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}

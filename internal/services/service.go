// Package services defines the lifecycle contracts long-lived components
// (session service, watchers) implement so the CLI can manage them uniformly.
package services

// Service is the base interface for all managed components.
type Service interface {
	// ServiceName returns the unique identifier for this service, used for
	// logging and debugging.
	ServiceName() string
}

// Initializable services need setup after construction, before first use.
type Initializable interface {
	Service
	// Initialize performs any setup required after construction.
	Initialize() error
}

// Cleanable services release resources on shutdown.
type Cleanable interface {
	Service
	// Cleanup releases any resources held by the service.
	// Must be idempotent and safe to call multiple times.
	Cleanup() error
}

// LifecycleService combines Initializable and Cleanable for services that
// need both ends of the lifecycle.
type LifecycleService interface {
	Initializable
	Cleanable
}

// Package delivery defines the contract every transport front-end satisfies.
package delivery

import "context"

// Delivery is a long-running server owned by the application lifecycle.
// Serve blocks until the server stops; shutdown happens through fx hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}

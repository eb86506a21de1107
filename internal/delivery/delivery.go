// Package delivery defines the entry points through which the outside world
// talks to the application.
package delivery

import "context"

// Delivery is implemented by every serving surface of the application.
type Delivery interface {
	// Serve blocks until the surface stops or the context is cancelled.
	Serve(ctx context.Context) error
}

// Package delivery holds the long-running entry points of the service.
package delivery

import "context"

// Delivery is a component started by the application after wiring.
// Serve blocks until the component stops.
type Delivery interface {
	Serve(ctx context.Context) error
}

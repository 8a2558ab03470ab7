// Package delivery defines the inbound transport surface of the service.
package delivery

import "context"

// Delivery is a serving transport, an HTTP API or a worker endpoint, started
// by the application container.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}

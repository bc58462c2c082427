// Package delivery defines the common contract for the transport servers.
package delivery

import "context"

// Delivery is a long-running transport server started by the application
// container. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}

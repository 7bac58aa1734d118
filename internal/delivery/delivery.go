// Package delivery holds the entry points that expose the use cases to the outside world.
package delivery

import "context"

// Delivery is a long-running server started by the application's fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}

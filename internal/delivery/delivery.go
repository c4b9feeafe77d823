// Package delivery holds the process entry points that serve traffic.
package delivery

import "context"

// Delivery is a server started by the application and stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}

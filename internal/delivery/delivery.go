// Package delivery defines the contract shared by all transport implementations.
package delivery

import "context"

// Delivery is implemented by every server the application can expose.
// Serve blocks until the server stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}

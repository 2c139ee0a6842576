// Package delivery defines the transports that drive the usecases.
package delivery

import "context"

// Delivery is a long-running inbound transport such as an HTTP server or a queue consumer.
type Delivery interface {
	Serve(ctx context.Context) error
}

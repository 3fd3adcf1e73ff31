// Package delivery defines the contract every transport front end
// (HTTP today, anything else later) satisfies so the composition root
// can start them uniformly.
package delivery

import "context"

// Delivery is a transport that serves the application until its context
// is cancelled or the server is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}

// Package delivery defines the contract every transport surface satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the process
// bootstrap and stopped through its lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}

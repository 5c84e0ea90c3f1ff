//go:generate mockgen -destination=./mocks/transport.go . Transport
package registry

import "context"

// Transport sends a single JSON request to a registry endpoint and
// returns the raw response body. Implementations classify network
// failures into the sentinel errors of this package.
type Transport interface {
	Post(ctx context.Context, endpoint string, payload any) ([]byte, error)
}

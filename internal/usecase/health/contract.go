package health

import "context"

// ContentPinger checks content store availability.
type ContentPinger interface {
	Ping(ctx context.Context) error
}

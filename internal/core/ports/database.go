// internal/core/ports/database.go
package ports

import "context"

// Database is the part of the connection pool the health checks use.
type Database interface {
	Ping(ctx context.Context) error
	Health(ctx context.Context) map[string]any
}

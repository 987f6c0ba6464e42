package ports

import (
	"context"
	"io"

	"go.trai.ch/forge/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of plan steps as vertices.
type Telemetry interface {
	// Record starts recording a new vertex for the named step.
	Record(ctx context.Context, name string, opts ...VertexOption) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer capturing the step's standard output stream.
	Stdout() io.Writer

	// Stderr returns a writer capturing the step's error output stream.
	Stderr() io.Writer

	// Log records a structured log message associated with this vertex.
	Log(level domain.LogLevel, msg string)

	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)

	// Cached marks the vertex as skipped due to a cache hit.
	Cached()
}

// VertexConfig holds configuration for a starting vertex.
type VertexConfig struct {
	// Internal marks vertices that should be hidden from user-facing output.
	Internal bool
}

// VertexOption is a functional option for configuring a vertex.
type VertexOption func(*VertexConfig)

// WithInternal marks the vertex as internal.
func WithInternal() VertexOption {
	return func(c *VertexConfig) {
		c.Internal = true
	}
}

type vertexContextKey struct{}

// ContextWithVertex returns a context carrying the given vertex.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexContextKey{}, v)
}

// VertexFromContext returns the vertex carried by the context, or nil.
func VertexFromContext(ctx context.Context) Vertex {
	v, _ := ctx.Value(vertexContextKey{}).(Vertex)
	return v
}

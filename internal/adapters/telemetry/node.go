package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/overlay/internal/core/ports"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.telemetry"

// InstrumentationName names the tracer of every overlay span.
const InstrumentationName = "overlay"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return NewOTelTracer(InstrumentationName), nil
		},
	})
}

package progrock

import (
	"fmt"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/refcache/internal/core/domain"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex   *progrock.VertexRecorder
	recorder *Recorder

	once   sync.Once
	cached bool
}

// Log writes a leveled line to the vertex output.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	_, _ = fmt.Fprintf(v.vertex.Stdout(), "[%s] %s\n", level.String(), msg)
}

// Complete marks the vertex as finished. Only the first call counts.
func (v *Vertex) Complete(err error) {
	v.once.Do(func() {
		v.vertex.Done(err)
		v.recorder.finish(v.cached, err)
	})
}

// Cached marks the vertex as satisfied from the cache.
func (v *Vertex) Cached() {
	v.cached = true
	v.vertex.Cached()
}

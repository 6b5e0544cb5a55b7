package progrock

import (
	"io"

	"go.trai.ch/extrepo/internal/core/ports"
)

// VertexStdout exposes the raw output stream of a recorded vertex.
func VertexStdout(v ports.Vertex) io.Writer {
	return v.(*Vertex).vertex.Stdout()
}

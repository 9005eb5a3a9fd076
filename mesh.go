package sr3d

import (
	"errors"
	"fmt"
)

// Mesh errors.
var (
	// ErrFaceArity is returned for a face that is neither a triangle nor a quad.
	ErrFaceArity = errors.New("sr3d: face must have 3 or 4 vertices")

	// ErrVertexIndex is returned for a face referencing a vertex that does
	// not exist.
	ErrVertexIndex = errors.New("sr3d: vertex index out of range")

	// ErrNilMesh is returned when Render is given no mesh.
	ErrNilMesh = errors.New("sr3d: nil mesh")
)

// FaceVertex is one corner of a face.
// V is a 1-based index into Mesh.Vertices. VT and VN are the texture and
// normal indices from the source file, 0 when absent; the renderer does not
// use them.
type FaceVertex struct {
	V, VT, VN int
}

// Face is an ordered list of corners. Winding order determines the normal.
type Face []FaceVertex

// Mesh is an indexed polygon mesh.
type Mesh struct {
	Vertices []Vec3
	Faces    []Face
}

// Vertex returns the vertex with the given 1-based index.
func (m *Mesh) Vertex(index int) (Vec3, error) {
	if index < 1 || index > len(m.Vertices) {
		return Vec3{}, fmt.Errorf("%w: %d (have %d)", ErrVertexIndex, index, len(m.Vertices))
	}
	return m.Vertices[index-1], nil
}

// Validate checks every face for a supported arity and valid vertex indices.
// A nil mesh is invalid.
func (m *Mesh) Validate() error {
	if m == nil {
		return ErrNilMesh
	}
	for i, f := range m.Faces {
		if n := len(f); n != 3 && n != 4 {
			return fmt.Errorf("face %d: %w, got %d", i+1, ErrFaceArity, n)
		}
		for _, fv := range f {
			if _, err := m.Vertex(fv.V); err != nil {
				return fmt.Errorf("face %d: %w", i+1, err)
			}
		}
	}
	return nil
}

// TriangleCount returns the number of triangles the faces split into.
func (m *Mesh) TriangleCount() int {
	n := 0
	for _, f := range m.Faces {
		if len(f) >= 3 {
			n += len(f) - 2
		}
	}
	return n
}

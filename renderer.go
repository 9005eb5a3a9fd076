package sr3d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rasterizer is the drawing surface the shading pipeline submits faces to.
// *Canvas implements it.
type Rasterizer interface {
	// SetColor sets the color for subsequent fills and lines.
	SetColor(c Color)

	// FillTriangle fills a depth-tested triangle in screen space.
	FillTriangle(a, b, c Vec3)

	// DrawLine draws a line between two pixels.
	DrawLine(x0, y0, x1, y1 int)
}

var _ Rasterizer = (*Canvas)(nil)

// Stats summarizes a call to Render.
type Stats struct {
	Faces     int // faces in the mesh
	Drawn     int // faces submitted to the rasterizer
	Culled    int // faces skipped for negative intensity
	Triangles int // triangles submitted
}

// Render flat-shades every face of the mesh onto dst.
//
// Each face is transformed to screen space, lit by a single directional
// light, and filled in a uniform grey. Faces facing away from the light
// are skipped. Quads are split into the triangles (A,B,C) and (A,D,C).
//
// The mesh is validated before anything is drawn; a face with the wrong
// number of vertices or a bad vertex index fails the whole render and
// leaves dst untouched.
func Render(dst Rasterizer, m *Mesh, opts ...RenderOption) (Stats, error) {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := o.logger
	if log == nil {
		log = Logger()
	}

	if err := m.Validate(); err != nil {
		return Stats{}, fmt.Errorf("sr3d: render: %w", err)
	}

	s := &shader{dst: dst, mesh: m, opts: o, matrix: o.transform.Matrix()}
	st := Stats{Faces: len(m.Faces)}
	for i, f := range m.Faces {
		n := s.face(f)
		if n == 0 {
			st.Culled++
			log.Debug("face culled", "face", i+1)
			continue
		}
		st.Drawn++
		st.Triangles += n
	}

	log.Info("render complete",
		"faces", st.Faces, "drawn", st.Drawn, "culled", st.Culled, "triangles", st.Triangles)
	return st, nil
}

// shader holds the per-render state of the pipeline.
type shader struct {
	dst    Rasterizer
	mesh   *Mesh
	opts   renderOptions
	matrix mgl64.Mat4
}

// face shades and submits a single validated face. It returns the number
// of triangles submitted, 0 if the face was culled.
func (s *shader) face(f Face) int {
	var model, screen [4]Vec3
	for i, fv := range f {
		model[i] = s.mesh.Vertices[fv.V-1]
		screen[i] = applyMatrix(s.matrix, model[i])
	}

	corners := screen
	if s.opts.normalSpace == NormalSpaceModel {
		corners = model
	}
	normal := FaceNormal(corners[0], corners[1], corners[2])

	grey, ok := Shade(normal, s.opts.light)
	if !ok {
		return 0
	}
	s.dst.SetColor(grey)

	a, b, c := screen[0], screen[1], screen[2]
	s.dst.FillTriangle(a, b, c)
	n := 1
	if len(f) == 4 {
		s.dst.FillTriangle(a, screen[3], c)
		n++
	}

	if s.opts.wireframe != nil {
		s.dst.SetColor(*s.opts.wireframe)
		for i := range f {
			p, q := screen[i], screen[(i+1)%len(f)]
			s.dst.DrawLine(int(p.X), int(p.Y), int(q.X), int(q.Y))
		}
	}
	return n
}

// FaceNormal returns the unit normal of the plane through a, b and c,
// oriented by their winding: normalize((b-a) × (c-a)). Collinear points
// give the zero vector.
func FaceNormal(a, b, c Vec3) Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// Shade computes the flat grey for a face with the given normal under a
// directional light. ok is false when the rounded grey level is negative,
// meaning the face points away from the light and must not be drawn.
// The level is rounded half to even, so an intensity of exactly -1/510
// gives -0 and the face is drawn black. Levels above 255 are clamped.
func Shade(normal, light Vec3) (c Color, ok bool) {
	grey := math.RoundToEven(255 * normal.Dot(light))
	if grey < 0 {
		return Color{}, false
	}
	return Grey(uint8(clamp255(grey))), true
}

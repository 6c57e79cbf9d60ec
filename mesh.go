package arbor

import (
	"github.com/fogleman/simplify"
	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is a collection of triangles and lines sharing one draw call.
type Mesh struct {
	Triangles []*Triangle
	Lines     []*Line
}

func NewMesh(triangles []*Triangle, lines []*Line) *Mesh {
	return &Mesh{triangles, lines}
}

func NewTriangleMesh(triangles []*Triangle) *Mesh {
	return &Mesh{Triangles: triangles}
}

func NewLineMesh(lines []*Line) *Mesh {
	return &Mesh{Lines: lines}
}

func NewEmptyMesh() *Mesh {
	return &Mesh{}
}

// Add appends the contents of another mesh.
func (m *Mesh) Add(other *Mesh) {
	m.Triangles = append(m.Triangles, other.Triangles...)
	m.Lines = append(m.Lines, other.Lines...)
}

func (m *Mesh) Copy() *Mesh {
	triangles := make([]*Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		c := *t
		triangles[i] = &c
	}
	lines := make([]*Line, len(m.Lines))
	for i, l := range m.Lines {
		c := *l
		lines[i] = &c
	}
	return NewMesh(triangles, lines)
}

func (m *Mesh) BoundingBox() Box {
	boxes := make([]Box, 0, len(m.Triangles)+len(m.Lines))
	for _, t := range m.Triangles {
		boxes = append(boxes, t.BoundingBox())
	}
	for _, l := range m.Lines {
		boxes = append(boxes, l.BoundingBox())
	}
	return BoxForBoxes(boxes)
}

// Transform bakes a matrix into the mesh geometry.
func (m *Mesh) Transform(matrix mgl64.Mat4) {
	for _, t := range m.Triangles {
		t.Transform(matrix)
	}
	for _, l := range m.Lines {
		l.Transform(matrix)
	}
}

func (m *Mesh) SetColor(c Color) {
	for _, t := range m.Triangles {
		t.SetColor(c)
	}
	for _, l := range m.Lines {
		l.SetColor(c)
	}
}

// Simplify reduces the triangle count to roughly factor times the current
// count using quadric edge collapse. Normals are rebuilt from the decimated
// faces; texture coordinates are discarded. Lines pass through untouched.
func (m *Mesh) Simplify(factor float64) *Mesh {
	in := make([]*simplify.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		in[i] = simplify.NewTriangle(
			simplifyVector(t.V1.Position),
			simplifyVector(t.V2.Position),
			simplifyVector(t.V3.Position),
		)
	}
	out := simplify.NewMesh(in).Simplify(factor)
	triangles := make([]*Triangle, len(out.Triangles))
	for i, t := range out.Triangles {
		triangles[i] = NewTriangleForPoints(
			mgl64.Vec3{t.V1.X, t.V1.Y, t.V1.Z},
			mgl64.Vec3{t.V2.X, t.V2.Y, t.V2.Z},
			mgl64.Vec3{t.V3.X, t.V3.Y, t.V3.Z},
		)
	}
	return NewMesh(triangles, m.Lines)
}

func simplifyVector(v mgl64.Vec3) simplify.Vector {
	return simplify.Vector{X: v[0], Y: v[1], Z: v[2]}
}

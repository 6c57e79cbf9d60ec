package arbor

import "github.com/go-gl/mathgl/mgl64"

type Triangle struct {
	V1, V2, V3 Vertex
}

func NewTriangle(v1, v2, v3 Vertex) *Triangle {
	return &Triangle{v1, v2, v3}
}

// NewTriangleForPoints builds a triangle from bare positions, deriving the
// face normal from the winding order.
func NewTriangleForPoints(p1, p2, p3 mgl64.Vec3) *Triangle {
	t := &Triangle{}
	t.V1.Position = p1
	t.V2.Position = p2
	t.V3.Position = p3
	t.FixNormals()
	return t
}

// Normal returns the face normal.
func (t *Triangle) Normal() mgl64.Vec3 {
	e1 := t.V2.Position.Sub(t.V1.Position)
	e2 := t.V3.Position.Sub(t.V1.Position)
	return e1.Cross(e2).Normalize()
}

// FixNormals assigns the face normal to any vertex lacking one.
func (t *Triangle) FixNormals() {
	n := t.Normal()
	zero := mgl64.Vec3{}
	if t.V1.Normal == zero {
		t.V1.Normal = n
	}
	if t.V2.Normal == zero {
		t.V2.Normal = n
	}
	if t.V3.Normal == zero {
		t.V3.Normal = n
	}
}

func (t *Triangle) SetColor(c Color) {
	t.V1.Color = c
	t.V2.Color = c
	t.V3.Color = c
}

func (t *Triangle) BoundingBox() Box {
	min := minVec(t.V1.Position, minVec(t.V2.Position, t.V3.Position))
	max := maxVec(t.V1.Position, maxVec(t.V2.Position, t.V3.Position))
	return Box{min, max}
}

// Transform applies a model matrix to positions and normals in place.
func (t *Triangle) Transform(m mgl64.Mat4) {
	t.V1.Position = mgl64.TransformCoordinate(t.V1.Position, m)
	t.V2.Position = mgl64.TransformCoordinate(t.V2.Position, m)
	t.V3.Position = mgl64.TransformCoordinate(t.V3.Position, m)
	n := m.Inv().Transpose()
	t.V1.Normal = mgl64.TransformNormal(t.V1.Normal, n).Normalize()
	t.V2.Normal = mgl64.TransformNormal(t.V2.Normal, n).Normalize()
	t.V3.Normal = mgl64.TransformNormal(t.V3.Normal, n).Normalize()
}

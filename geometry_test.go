package arbor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

// assertFacesOutward checks that every face normal of a convex solid
// centered at the origin points away from it.
func assertFacesOutward(t *testing.T, m *Mesh) {
	t.Helper()
	for i, tri := range m.Triangles {
		centroid := tri.V1.Position.
			Add(tri.V2.Position).
			Add(tri.V3.Position).
			Mul(1.0 / 3)
		if tri.Normal().Dot(centroid) <= 0 {
			t.Fatalf("triangle %d faces inward", i)
		}
	}
}

func TestCubeMesh(t *testing.T) {
	m := NewCubeMesh()
	assert.Len(t, m.Triangles, 12)

	box := m.BoundingBox()
	assertVec3Near(t, mgl64.Vec3{-0.5, -0.5, -0.5}, box.Min, testEpsilon)
	assertVec3Near(t, mgl64.Vec3{0.5, 0.5, 0.5}, box.Max, testEpsilon)
	assertFacesOutward(t, m)
}

func TestSphereMesh(t *testing.T) {
	m := NewSphereMesh(8, 6)
	// pole stacks contribute one triangle per sector, the rest two
	assert.Len(t, m.Triangles, 8*(2*6-2))

	for _, tri := range m.Triangles {
		for _, v := range []Vertex{tri.V1, tri.V2, tri.V3} {
			assert.InDelta(t, 1.0, v.Position.Len(), 1e-9)
			assert.InDelta(t, 1.0, v.Normal.Len(), 1e-9)
		}
	}
	assertFacesOutward(t, m)
}

func TestCylinderMesh(t *testing.T) {
	m := NewCylinderMesh(16)
	assert.Len(t, m.Triangles, 16*4)

	box := m.BoundingBox()
	assertVec3Near(t, mgl64.Vec3{-1, -0.5, -1}, box.Min, 1e-9)
	assertVec3Near(t, mgl64.Vec3{1, 0.5, 1}, box.Max, 1e-9)
	assertFacesOutward(t, m)
}

func TestConeMesh(t *testing.T) {
	m := NewConeMesh(16)
	assert.Len(t, m.Triangles, 16*2)
	box := m.BoundingBox()
	assert.InDelta(t, 0.5, box.Max[1], 1e-9)
	assert.InDelta(t, -0.5, box.Min[1], 1e-9)
}

func TestPlaneMesh(t *testing.T) {
	m := NewPlaneMesh()
	assert.Len(t, m.Triangles, 2)
	for _, tri := range m.Triangles {
		assertVec3Near(t, mgl64.Vec3{0, 1, 0}, tri.Normal(), testEpsilon)
	}
}

func TestTorusMesh(t *testing.T) {
	m := NewTorusMesh(1, 0.25, 16, 16)
	assert.Len(t, m.Triangles, 16*16*2)

	box := m.BoundingBox()
	assert.InDelta(t, 1.25, box.Max[0], 1e-6)
	assert.InDelta(t, 0.25, box.Max[1], 1e-6)

	// tube normals point away from the ring center line
	for _, tri := range m.Triangles {
		p := tri.V1.Position
		ring := mgl64.Vec3{p[0], 0, p[2]}.Normalize()
		assert.True(t, tri.V1.Normal.Dot(p.Sub(ring)) > 0)
	}
}

func TestPyramidMesh(t *testing.T) {
	m := NewPyramidMesh()
	assert.Len(t, m.Triangles, 6)
	assertFacesOutward(t, m)
}

func TestGridMesh(t *testing.T) {
	m := NewGridMesh(2, 0.5)
	assert.Empty(t, m.Triangles)
	assert.Len(t, m.Lines, (2*2+1)*2)

	box := m.BoundingBox()
	assertVec3Near(t, mgl64.Vec3{-1, 0, -1}, box.Min, testEpsilon)
	assertVec3Near(t, mgl64.Vec3{1, 0, 1}, box.Max, testEpsilon)
}

func TestLetterHMesh(t *testing.T) {
	m := NewLetterHMesh(1.5, 2, 0.4)
	assert.NotEmpty(t, m.Triangles)

	box := m.BoundingBox()
	assert.InDelta(t, 1.5, box.Max[0]-box.Min[0], 1e-9)
	assert.InDelta(t, 2, box.Max[1]-box.Min[1], 1e-9)
	assert.InDelta(t, 0.4, box.Max[2]-box.Min[2], 1e-9)
}

func TestMeshTransformBakesMatrix(t *testing.T) {
	m := NewCubeMesh()
	m.Transform(mgl64.Translate3D(3, 0, 0).Mul4(mgl64.Scale3D(2, 2, 2)))

	box := m.BoundingBox()
	assertVec3Near(t, mgl64.Vec3{2, -1, -1}, box.Min, testEpsilon)
	assertVec3Near(t, mgl64.Vec3{4, 1, 1}, box.Max, testEpsilon)
}

func TestMeshCopyIsIndependent(t *testing.T) {
	m := NewCubeMesh()
	c := m.Copy()
	c.Transform(mgl64.Translate3D(10, 0, 0))
	assert.InDelta(t, 0.5, m.BoundingBox().Max[0], 1e-9)
	assert.InDelta(t, 10.5, c.BoundingBox().Max[0], 1e-9)
}

func TestMeshSimplifyReducesTriangles(t *testing.T) {
	m := NewSphereMesh(32, 32)
	before := len(m.Triangles)
	s := m.Simplify(0.25)
	assert.Less(t, len(s.Triangles), before)
	assert.NotEmpty(t, s.Triangles)
	// the original is untouched
	assert.Len(t, m.Triangles, before)
}

func TestBoxOperations(t *testing.T) {
	a := Box{mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}}
	b := Box{mgl64.Vec3{-1, 0.5, 0}, mgl64.Vec3{0.5, 2, 1}}

	u := a.Extend(b)
	assertVec3Near(t, mgl64.Vec3{-1, 0, 0}, u.Min, testEpsilon)
	assertVec3Near(t, mgl64.Vec3{1, 2, 1}, u.Max, testEpsilon)

	assertVec3Near(t, mgl64.Vec3{0.5, 0.5, 0.5}, a.Center(), testEpsilon)
	assert.True(t, a.Contains(mgl64.Vec3{0.5, 0.5, 0.5}))
	assert.False(t, a.Contains(mgl64.Vec3{2, 0, 0}))
	assert.Len(t, a.Corners(), 8)
}

package arbor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneAutoNames(t *testing.T) {
	s := NewScene(nil)
	a, err := s.CreateCube("", mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, Color{})
	require.NoError(t, err)
	b, err := s.CreateSphere("", mgl64.Vec3{}, 1, Color{})
	require.NoError(t, err)

	assert.Equal(t, "Cube_0", a.Name())
	assert.Equal(t, "Sphere_1", b.Name())
	assert.Equal(t, a, s.Object("Cube_0"))
	assert.Equal(t, b, s.Object("Sphere_1"))
}

func TestSceneCountersAreIndependent(t *testing.T) {
	s1 := NewScene(nil)
	s2 := NewScene(nil)
	a, err := s1.CreateCube("", mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, Color{})
	require.NoError(t, err)
	b, err := s2.CreateCube("", mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, Color{})
	require.NoError(t, err)
	assert.Equal(t, "Cube_0", a.Name())
	assert.Equal(t, "Cube_0", b.Name())
}

func TestSceneAutoNameSkipsCollisions(t *testing.T) {
	s := NewScene(nil)
	_, err := s.CreateCube("Cube_0", mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, Color{})
	require.NoError(t, err)
	o, err := s.CreateCube("", mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, Color{})
	require.NoError(t, err)
	assert.Equal(t, "Cube_1", o.Name())
}

func TestSceneRejectsDuplicateNames(t *testing.T) {
	s := NewScene(nil)
	_, err := s.CreateSphere("ball", mgl64.Vec3{}, 1, Color{})
	require.NoError(t, err)
	_, err = s.CreateSphere("ball", mgl64.Vec3{}, 2, Color{})
	assert.Error(t, err)
	assert.Equal(t, 1, s.ObjectCount())
}

func TestSceneDefaultColors(t *testing.T) {
	s := NewScene(nil)
	cube, err := s.CreateCube("", mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, Color{})
	require.NoError(t, err)
	assert.Equal(t, DefaultCubeColor, cube.Color())

	red, err := s.CreateCube("red", mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, RGB(1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, RGB(1, 0, 0), red.Color())
}

func TestSceneLookupAndRemoval(t *testing.T) {
	s := NewScene(nil)
	a, err := s.CreateCube("a", mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, Color{})
	require.NoError(t, err)
	b, err := s.CreateCylinder("b", mgl64.Vec3{}, 1, 1, Color{})
	require.NoError(t, err)

	assert.Equal(t, a, s.ObjectAt(0))
	assert.Equal(t, b, s.ObjectAt(1))
	assert.Nil(t, s.ObjectAt(2))
	assert.Nil(t, s.ObjectAt(-1))
	assert.Nil(t, s.Object("missing"))

	s.RemoveObject("a")
	assert.Equal(t, 1, s.ObjectCount())
	assert.Nil(t, s.Object("a"))
	assert.Equal(t, b, s.ObjectAt(0))

	s.RemoveObjectAt(0)
	assert.Equal(t, 0, s.ObjectCount())

	// removing what is not there is a no-op
	s.RemoveObject("a")
	s.RemoveObjectAt(5)
}

func TestSceneRemovalDetachesHierarchy(t *testing.T) {
	s := NewScene(nil)
	parent, err := s.CreateCube("parent", mgl64.Vec3{5, 0, 0}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, Color{})
	require.NoError(t, err)
	child, err := s.CreateSphere("child", mgl64.Vec3{1, 0, 0}, 1, Color{})
	require.NoError(t, err)
	require.NoError(t, child.SetParent(parent))

	s.RemoveObject("parent")
	assert.Nil(t, child.Parent())
	assertVec3Near(t, mgl64.Vec3{1, 0, 0},
		child.Transform().TransformPoint(mgl64.Vec3{}), testEpsilon)
}

func TestSceneClear(t *testing.T) {
	s := NewScene(nil)
	_, err := s.CreateCube("a", mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, Color{})
	require.NoError(t, err)
	_, err = s.CreateLetterH("h", mgl64.Vec3{}, 1, 2, 0.5, Color{})
	require.NoError(t, err)

	s.Clear()
	assert.Equal(t, 0, s.ObjectCount())
	assert.Nil(t, s.Object("a"))

	// names are free again after a clear
	_, err = s.CreateCube("a", mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, Color{})
	assert.NoError(t, err)
}

func TestSceneGroupOperations(t *testing.T) {
	s := NewScene(nil)
	a, err := s.CreateCube("a", mgl64.Vec3{1, 0, 0}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, Color{})
	require.NoError(t, err)
	b, err := s.CreateCube("b", mgl64.Vec3{0, 1, 0}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, Color{})
	require.NoError(t, err)

	s.TranslateAll(mgl64.Vec3{0, 0, 2}, SpaceWorld)
	assertVec3Near(t, mgl64.Vec3{1, 0, 2}, a.Position(), testEpsilon)
	assertVec3Near(t, mgl64.Vec3{0, 1, 2}, b.Position(), testEpsilon)

	s.ScaleAll(mgl64.Vec3{2, 2, 2})
	assert.Equal(t, mgl64.Vec3{2, 2, 2}, a.Scale())

	s.RotateAll(mgl64.QuatRotate(0.5, mgl64.Vec3{0, 1, 0}), SpaceWorld)
	assert.InDelta(t, 1.0, a.Rotation().Len(), 1e-9)
}

func TestSceneDrawAll(t *testing.T) {
	r := NewRenderer(64, 64)
	s := NewScene(r)
	_, err := s.CreateCube("", mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, Color{})
	require.NoError(t, err)

	cam := NewCamera(mgl64.Vec3{0, 0, 3}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}, 60, 1, 0.1, 10)
	r.SetCamera(cam)
	r.ClearWith(Black)
	assert.NotPanics(t, func() { s.DrawAll() })

	// a lit cube in front of the camera must produce non-black pixels
	img := r.Image()
	bounds := img.Bounds()
	lit := false
	for y := bounds.Min.Y; y < bounds.Max.Y && !lit; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			if cr|cg|cb != 0 {
				lit = true
				break
			}
		}
	}
	assert.True(t, lit)
}

func TestSceneDrawAllWithoutRenderer(t *testing.T) {
	s := NewScene(nil)
	_, err := s.CreateCube("", mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, Color{})
	require.NoError(t, err)
	assert.NotPanics(t, func() { s.DrawAll() })
}

func TestSetRendererPropagates(t *testing.T) {
	s := NewScene(nil)
	o, err := s.CreateCube("", mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, Color{})
	require.NoError(t, err)
	assert.Nil(t, o.renderer)

	r := NewRenderer(8, 8)
	s.SetRenderer(r)
	assert.Equal(t, r, o.renderer)
}

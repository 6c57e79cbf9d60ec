package arbor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestCameraViewMovesEyeToOrigin(t *testing.T) {
	cam := NewCamera(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}, 60, 1, 0.1, 100)
	p := mgl64.TransformCoordinate(cam.Eye, cam.ViewMatrix())
	assertVec3Near(t, mgl64.Vec3{}, p, 1e-9)

	// the look target ends up on the -Z axis in view space
	q := mgl64.TransformCoordinate(cam.Center, cam.ViewMatrix())
	assertVec3Near(t, mgl64.Vec3{0, 0, -5}, q, 1e-9)
}

func TestCameraProjectionCentersTarget(t *testing.T) {
	cam := NewCamera(mgl64.Vec3{3, 2, 5}, mgl64.Vec3{1, 1, 1}, mgl64.Vec3{0, 1, 0}, 50, 1.5, 0.1, 100)
	vp := cam.ViewProjection()
	ndc := mgl64.TransformCoordinate(cam.Center, vp)
	assert.InDelta(t, 0, ndc[0], 1e-9)
	assert.InDelta(t, 0, ndc[1], 1e-9)
}

func TestFrameBoxesContainsScene(t *testing.T) {
	cam := NewCamera(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}, 10, 1, 0.1, 100)
	boxes := []Box{
		{mgl64.Vec3{-3, -3, -3}, mgl64.Vec3{3, 3, 3}},
	}
	vp := cam.FrameBoxes(boxes)

	for _, corner := range boxes[0].Corners() {
		ndc := mgl64.TransformCoordinate(corner, vp)
		assert.LessOrEqual(t, ndc[0], 1.0)
		assert.GreaterOrEqual(t, ndc[0], -1.0)
		assert.LessOrEqual(t, ndc[1], 1.0)
		assert.GreaterOrEqual(t, ndc[1], -1.0)
	}
}

func TestFrameBoxesEmptyFallsBack(t *testing.T) {
	cam := NewCamera(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}, 45, 1, 0.1, 100)
	assertMat4Near(t, cam.ViewProjection(), cam.FrameBoxes(nil), testEpsilon)
}

func TestOrbitCameraPosition(t *testing.T) {
	orbit := NewOrbitCamera(mgl64.Vec3{}, 5, 0, 0)
	assertVec3Near(t, mgl64.Vec3{0, 0, 5}, orbit.Position(), 1e-9)

	orbit.Yaw = 90
	assertVec3Near(t, mgl64.Vec3{5, 0, 0}, orbit.Position(), 1e-9)

	orbit.Pitch = 90
	orbit.Yaw = 0
	assertVec3Near(t, mgl64.Vec3{0, 5, 0}, orbit.Position(), 1e-9)

	orbit.Target = mgl64.Vec3{1, 2, 3}
	orbit.Pitch = 0
	assertVec3Near(t, mgl64.Vec3{1, 2, 8}, orbit.Position(), 1e-9)
}

func TestOrbitCameraConversion(t *testing.T) {
	orbit := NewOrbitCamera(mgl64.Vec3{0, 1, 0}, 8, 25, 40)
	cam := orbit.Camera(50, 1.6, 0.1, 100)
	assert.Equal(t, orbit.Target, cam.Center)
	assert.InDelta(t, 8, cam.Eye.Sub(cam.Center).Len(), 1e-9)
}

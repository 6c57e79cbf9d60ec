package arbor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective look-at camera. Fovy is in degrees.
type Camera struct {
	Eye    mgl64.Vec3
	Center mgl64.Vec3
	Up     mgl64.Vec3
	Fovy   float64
	Aspect float64
	Near   float64
	Far    float64
}

func NewCamera(eye, center, up mgl64.Vec3, fovy, aspect, near, far float64) *Camera {
	return &Camera{Eye: eye, Center: center, Up: up, Fovy: fovy, Aspect: aspect, Near: near, Far: far}
}

func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Center, c.Up)
}

func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.Fovy), c.Aspect, c.Near, c.Far)
}

func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// FrameBoxes widens the field of view just enough to contain every box,
// returning the resulting view-projection matrix. The camera itself is
// not moved. With no boxes the current parameters are used unchanged.
func (c *Camera) FrameBoxes(boxes []Box) mgl64.Mat4 {
	view := c.ViewMatrix()
	if len(boxes) == 0 {
		return c.ProjectionMatrix().Mul4(view)
	}
	sceneBox := BoxForBoxes(boxes)

	var maxAngleX, maxAngleY float64
	for _, corner := range sceneBox.Corners() {
		p := mgl64.TransformCoordinate(corner, view)

		// the camera looks down -Z in view space; depth from the camera
		// plane drives the angle
		absZ := math.Abs(p[2])
		if absZ < 1e-6 {
			continue
		}
		if a := math.Atan(math.Abs(p[0]) / absZ); a > maxAngleX {
			maxAngleX = a
		}
		if a := math.Atan(math.Abs(p[1]) / absZ); a > maxAngleY {
			maxAngleY = a
		}
	}

	fovyFromY := 2 * maxAngleY
	fovyFromX := 2 * math.Atan(math.Tan(maxAngleX)/c.Aspect)
	fovy := math.Max(fovyFromX, fovyFromY)

	// 5% padding keeps the silhouette off the frame edges
	fovyDeg := Degrees(fovy) * 1.05
	if fovyDeg <= 0 {
		fovyDeg = c.Fovy
	}
	return mgl64.Perspective(mgl64.DegToRad(fovyDeg), c.Aspect, c.Near, c.Far).Mul4(view)
}

// OrbitCamera positions an eye on a sphere around a target. Pitch and yaw
// are in degrees.
type OrbitCamera struct {
	Target   mgl64.Vec3
	Distance float64
	Pitch    float64
	Yaw      float64
}

func NewOrbitCamera(target mgl64.Vec3, distance, pitch, yaw float64) *OrbitCamera {
	return &OrbitCamera{Target: target, Distance: distance, Pitch: pitch, Yaw: yaw}
}

func (c *OrbitCamera) Position() mgl64.Vec3 {
	pitch := mgl64.DegToRad(c.Pitch)
	yaw := mgl64.DegToRad(c.Yaw)
	return mgl64.Vec3{
		c.Distance * math.Cos(pitch) * math.Sin(yaw),
		c.Distance * math.Sin(pitch),
		c.Distance * math.Cos(pitch) * math.Cos(yaw),
	}.Add(c.Target)
}

func (c *OrbitCamera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position(), c.Target, mgl64.Vec3{0, 1, 0})
}

// Camera converts the orbit parameters into a perspective Camera.
func (c *OrbitCamera) Camera(fovy, aspect, near, far float64) *Camera {
	return NewCamera(c.Position(), c.Target, mgl64.Vec3{0, 1, 0}, fovy, aspect, near, far)
}

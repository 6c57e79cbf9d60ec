package arbor

import "github.com/go-gl/mathgl/mgl64"

// NewLetterHMesh builds the letter H out of three cylinders: two vertical
// strokes and a horizontal crossbar rotated 90 degrees about Z. The stroke
// radius is a fifth of the width; depth sets the front-to-back thickness of
// the strokes.
func NewLetterHMesh(width, height, depth float64) *Mesh {
	const sectors = 12
	strokeWidth := width * 0.2
	halfWidth := width / 2
	radius := strokeWidth / 2

	mesh := NewEmptyMesh()
	stroke := func(position mgl64.Vec3, length, angleDeg float64) {
		m := mgl64.Translate3D(position[0], position[1], position[2]).
			Mul4(mgl64.HomogRotate3D(mgl64.DegToRad(angleDeg), mgl64.Vec3{0, 0, 1})).
			Mul4(mgl64.Scale3D(radius, length, depth/2))
		part := NewCylinderMesh(sectors)
		part.Transform(m)
		mesh.Add(part)
	}

	stroke(mgl64.Vec3{-halfWidth + radius, 0, 0}, height, 0)
	// the crossbar is shortened so the joints do not poke out the sides
	stroke(mgl64.Vec3{}, width*0.7, 90)
	stroke(mgl64.Vec3{halfWidth - radius, 0, 0}, height, 0)
	return mesh
}

package arbor

import "github.com/go-gl/mathgl/mgl64"

type Line struct {
	V1, V2 Vertex
}

func NewLine(v1, v2 Vertex) *Line {
	return &Line{v1, v2}
}

func NewLineForPoints(p1, p2 mgl64.Vec3) *Line {
	l := &Line{}
	l.V1.Position = p1
	l.V2.Position = p2
	return l
}

func (l *Line) SetColor(c Color) {
	l.V1.Color = c
	l.V2.Color = c
}

func (l *Line) BoundingBox() Box {
	return Box{minVec(l.V1.Position, l.V2.Position), maxVec(l.V1.Position, l.V2.Position)}
}

func (l *Line) Transform(m mgl64.Mat4) {
	l.V1.Position = mgl64.TransformCoordinate(l.V1.Position, m)
	l.V2.Position = mgl64.TransformCoordinate(l.V2.Position, m)
}

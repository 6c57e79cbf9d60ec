package arbor

import "github.com/go-gl/mathgl/mgl64"

// Vertex carries the attributes interpolated across a triangle. Output is
// the clip-space position produced by a shader's vertex stage.
type Vertex struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
	Texture  mgl64.Vec2
	Color    Color
	Output   mgl64.Vec4
}

// Outside reports whether the vertex lies outside the clip volume.
func (v Vertex) Outside() bool {
	w := v.Output.W()
	if w <= 0 {
		return true
	}
	x, y, z := v.Output.X(), v.Output.Y(), v.Output.Z()
	return x < -w || x > w || y < -w || y > w || z < -w || z > w
}

// InterpolateVertices blends three vertices with perspective-correct
// barycentric weights. b holds the premultiplied weights and their
// normalization factor in the fourth component.
func InterpolateVertices(v1, v2, v3 Vertex, b mgl64.Vec4) Vertex {
	n := b.W()
	var v Vertex
	v.Position = v1.Position.Mul(b.X()).Add(v2.Position.Mul(b.Y())).Add(v3.Position.Mul(b.Z())).Mul(n)
	v.Normal = v1.Normal.Mul(b.X()).Add(v2.Normal.Mul(b.Y())).Add(v3.Normal.Mul(b.Z())).Mul(n).Normalize()
	v.Texture = v1.Texture.Mul(b.X()).Add(v2.Texture.Mul(b.Y())).Add(v3.Texture.Mul(b.Z())).Mul(n)
	v.Color = v1.Color.MulScalar(b.X()).Add(v2.Color.MulScalar(b.Y())).Add(v3.Color.MulScalar(b.Z())).MulScalar(n)
	return v
}

// lerpVertices interpolates every attribute, including clip-space output.
// Used when clipping primitives against the view volume.
func lerpVertices(a, b Vertex, t float64) Vertex {
	var v Vertex
	v.Position = a.Position.Add(b.Position.Sub(a.Position).Mul(t))
	v.Normal = a.Normal.Add(b.Normal.Sub(a.Normal).Mul(t))
	v.Texture = a.Texture.Add(b.Texture.Sub(a.Texture).Mul(t))
	v.Color = a.Color.Lerp(b.Color, t)
	v.Output = a.Output.Add(b.Output.Sub(a.Output).Mul(t))
	return v
}

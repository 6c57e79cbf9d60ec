package arbor

import "github.com/go-gl/mathgl/mgl64"

// Clipping happens in homogeneous clip space against the six planes of the
// view volume, before the perspective divide.

var clipPlanes = []mgl64.Vec4{
	{-1, 0, 0, 1}, // x <= w
	{1, 0, 0, 1},  // x >= -w
	{0, -1, 0, 1}, // y <= w
	{0, 1, 0, 1},  // y >= -w
	{0, 0, -1, 1}, // z <= w
	{0, 0, 1, 1},  // z >= -w
}

// ClipTriangle clips a triangle whose vertices already carry clip-space
// output. It returns zero or more triangles covering the clipped polygon.
func ClipTriangle(t *Triangle) []*Triangle {
	poly := []Vertex{t.V1, t.V2, t.V3}
	for _, plane := range clipPlanes {
		poly = clipPolygon(poly, plane)
		if len(poly) == 0 {
			return nil
		}
	}
	triangles := make([]*Triangle, 0, len(poly)-2)
	for i := 1; i < len(poly)-1; i++ {
		triangles = append(triangles, NewTriangle(poly[0], poly[i], poly[i+1]))
	}
	return triangles
}

// ClipLine clips a line segment, returning nil when it is fully outside.
func ClipLine(l *Line) *Line {
	v1, v2 := l.V1, l.V2
	for _, plane := range clipPlanes {
		d1 := plane.Dot(v1.Output)
		d2 := plane.Dot(v2.Output)
		switch {
		case d1 < 0 && d2 < 0:
			return nil
		case d1 < 0:
			v1 = lerpVertices(v1, v2, d1/(d1-d2))
		case d2 < 0:
			v2 = lerpVertices(v2, v1, d2/(d2-d1))
		}
	}
	return NewLine(v1, v2)
}

func clipPolygon(poly []Vertex, plane mgl64.Vec4) []Vertex {
	var out []Vertex
	for i := range poly {
		cur := poly[i]
		prev := poly[(i+len(poly)-1)%len(poly)]
		dc := plane.Dot(cur.Output)
		dp := plane.Dot(prev.Output)
		if dc >= 0 {
			if dp < 0 {
				out = append(out, lerpVertices(prev, cur, dp/(dp-dc)))
			}
			out = append(out, cur)
		} else if dp >= 0 {
			out = append(out, lerpVertices(prev, cur, dp/(dp-dc)))
		}
	}
	return out
}

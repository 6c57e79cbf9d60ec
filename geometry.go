package arbor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Procedural unit primitives. Shape dimensions (radius, height, ...) are
// applied by scaling, either baked into the mesh or via the model matrix.

// NewCubeMesh returns a unit cube spanning [-0.5, 0.5] on every axis with
// per-face normals and texture coordinates.
func NewCubeMesh() *Mesh {
	type face struct {
		normal mgl64.Vec3
		right  mgl64.Vec3
		up     mgl64.Vec3
	}
	faces := []face{
		{mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}},
		{mgl64.Vec3{0, 0, -1}, mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{0, 1, 0}},
		{mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, 1, 0}},
		{mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 1, 0}},
		{mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, -1}},
		{mgl64.Vec3{0, -1, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 1}},
	}
	var triangles []*Triangle
	for _, f := range faces {
		center := f.normal.Mul(0.5)
		corner := func(u, v float64) Vertex {
			p := center.Add(f.right.Mul(u * 0.5)).Add(f.up.Mul(v * 0.5))
			return Vertex{
				Position: p,
				Normal:   f.normal,
				Texture:  mgl64.Vec2{(u + 1) / 2, (v + 1) / 2},
			}
		}
		v00 := corner(-1, -1)
		v10 := corner(1, -1)
		v11 := corner(1, 1)
		v01 := corner(-1, 1)
		triangles = append(triangles,
			NewTriangle(v00, v10, v11),
			NewTriangle(v00, v11, v01))
	}
	return NewTriangleMesh(triangles)
}

// NewSphereMesh returns a unit-radius UV sphere.
func NewSphereMesh(sectors, stacks int) *Mesh {
	point := func(i, j int) Vertex {
		phi := math.Pi/2 - math.Pi*float64(i)/float64(stacks)
		theta := 2 * math.Pi * float64(j) / float64(sectors)
		p := mgl64.Vec3{
			math.Cos(phi) * math.Cos(theta),
			math.Sin(phi),
			math.Cos(phi) * math.Sin(theta),
		}
		return Vertex{
			Position: p,
			Normal:   p,
			Texture:  mgl64.Vec2{float64(j) / float64(sectors), 1 - float64(i)/float64(stacks)},
		}
	}
	var triangles []*Triangle
	for i := 0; i < stacks; i++ {
		for j := 0; j < sectors; j++ {
			v00 := point(i, j)
			v10 := point(i+1, j)
			v11 := point(i+1, j+1)
			v01 := point(i, j+1)
			if i > 0 {
				triangles = append(triangles, NewTriangle(v00, v11, v10))
			}
			if i < stacks-1 {
				triangles = append(triangles, NewTriangle(v00, v01, v11))
			}
		}
	}
	return NewTriangleMesh(triangles)
}

// NewCylinderMesh returns a cylinder of radius 1 and height 1 centered at
// the origin, with caps.
func NewCylinderMesh(sectors int) *Mesh {
	var triangles []*Triangle
	step := 2 * math.Pi / float64(sectors)
	side := func(j int, y float64) Vertex {
		theta := step * float64(j)
		n := mgl64.Vec3{math.Cos(theta), 0, math.Sin(theta)}
		return Vertex{
			Position: mgl64.Vec3{n[0], y, n[2]},
			Normal:   n,
			Texture:  mgl64.Vec2{float64(j) / float64(sectors), y + 0.5},
		}
	}
	cap_ := func(j int, y float64, n mgl64.Vec3) Vertex {
		theta := step * float64(j)
		x, z := math.Cos(theta), math.Sin(theta)
		return Vertex{
			Position: mgl64.Vec3{x, y, z},
			Normal:   n,
			Texture:  mgl64.Vec2{(x + 1) / 2, (z + 1) / 2},
		}
	}
	up := mgl64.Vec3{0, 1, 0}
	down := mgl64.Vec3{0, -1, 0}
	topCenter := Vertex{Position: mgl64.Vec3{0, 0.5, 0}, Normal: up, Texture: mgl64.Vec2{0.5, 0.5}}
	bottomCenter := Vertex{Position: mgl64.Vec3{0, -0.5, 0}, Normal: down, Texture: mgl64.Vec2{0.5, 0.5}}
	for j := 0; j < sectors; j++ {
		// wall
		v00 := side(j, -0.5)
		v10 := side(j+1, -0.5)
		v11 := side(j+1, 0.5)
		v01 := side(j, 0.5)
		triangles = append(triangles,
			NewTriangle(v00, v01, v11),
			NewTriangle(v00, v11, v10))
		// caps
		triangles = append(triangles,
			NewTriangle(topCenter, cap_(j+1, 0.5, up), cap_(j, 0.5, up)),
			NewTriangle(bottomCenter, cap_(j, -0.5, down), cap_(j+1, -0.5, down)))
	}
	return NewTriangleMesh(triangles)
}

// NewConeMesh returns a cone with base radius 1 at y=-0.5 and apex at y=0.5.
func NewConeMesh(sectors int) *Mesh {
	var triangles []*Triangle
	step := 2 * math.Pi / float64(sectors)
	// slant normal: for unit radius and unit height the side normal tilts
	// by atan(radius/height) from horizontal
	ny := 1 / math.Sqrt2
	nxz := 1 / math.Sqrt2
	rim := func(j int) (mgl64.Vec3, mgl64.Vec3) {
		theta := step * float64(j)
		x, z := math.Cos(theta), math.Sin(theta)
		return mgl64.Vec3{x, -0.5, z}, mgl64.Vec3{x * nxz, ny, z * nxz}.Normalize()
	}
	apex := mgl64.Vec3{0, 0.5, 0}
	down := mgl64.Vec3{0, -1, 0}
	baseCenter := Vertex{Position: mgl64.Vec3{0, -0.5, 0}, Normal: down, Texture: mgl64.Vec2{0.5, 0.5}}
	for j := 0; j < sectors; j++ {
		p0, n0 := rim(j)
		p1, n1 := rim(j + 1)
		na := n0.Add(n1).Normalize()
		triangles = append(triangles, NewTriangle(
			Vertex{Position: p0, Normal: n0, Texture: mgl64.Vec2{float64(j) / float64(sectors), 0}},
			Vertex{Position: apex, Normal: na, Texture: mgl64.Vec2{(float64(j) + 0.5) / float64(sectors), 1}},
			Vertex{Position: p1, Normal: n1, Texture: mgl64.Vec2{float64(j+1) / float64(sectors), 0}},
		))
		triangles = append(triangles, NewTriangle(
			baseCenter,
			Vertex{Position: p0, Normal: down, Texture: mgl64.Vec2{(p0[0] + 1) / 2, (p0[2] + 1) / 2}},
			Vertex{Position: p1, Normal: down, Texture: mgl64.Vec2{(p1[0] + 1) / 2, (p1[2] + 1) / 2}},
		))
	}
	return NewTriangleMesh(triangles)
}

// NewPlaneMesh returns a unit plane on XZ facing +Y.
func NewPlaneMesh() *Mesh {
	up := mgl64.Vec3{0, 1, 0}
	corner := func(x, z float64) Vertex {
		return Vertex{
			Position: mgl64.Vec3{x * 0.5, 0, z * 0.5},
			Normal:   up,
			Texture:  mgl64.Vec2{(x + 1) / 2, (z + 1) / 2},
		}
	}
	v00 := corner(-1, -1)
	v10 := corner(1, -1)
	v11 := corner(1, 1)
	v01 := corner(-1, 1)
	return NewTriangleMesh([]*Triangle{
		NewTriangle(v00, v11, v10),
		NewTriangle(v00, v01, v11),
	})
}

// NewTorusMesh returns a torus around the Y axis.
func NewTorusMesh(majorRadius, tubeRadius float64, sectors, rings int) *Mesh {
	point := func(i, j int) Vertex {
		u := 2 * math.Pi * float64(i) / float64(rings)   // around the main ring
		v := 2 * math.Pi * float64(j) / float64(sectors) // around the tube
		center := mgl64.Vec3{majorRadius * math.Cos(u), 0, majorRadius * math.Sin(u)}
		n := mgl64.Vec3{
			math.Cos(v) * math.Cos(u),
			math.Sin(v),
			math.Cos(v) * math.Sin(u),
		}
		return Vertex{
			Position: center.Add(n.Mul(tubeRadius)),
			Normal:   n,
			Texture:  mgl64.Vec2{float64(i) / float64(rings), float64(j) / float64(sectors)},
		}
	}
	var triangles []*Triangle
	for i := 0; i < rings; i++ {
		for j := 0; j < sectors; j++ {
			v00 := point(i, j)
			v10 := point(i+1, j)
			v11 := point(i+1, j+1)
			v01 := point(i, j+1)
			triangles = append(triangles,
				NewTriangle(v00, v11, v10),
				NewTriangle(v00, v01, v11))
		}
	}
	return NewTriangleMesh(triangles)
}

// NewPyramidMesh returns a square pyramid with a unit base at y=-0.5 and
// apex at y=0.5.
func NewPyramidMesh() *Mesh {
	apex := mgl64.Vec3{0, 0.5, 0}
	base := []mgl64.Vec3{
		{-0.5, -0.5, -0.5},
		{0.5, -0.5, -0.5},
		{0.5, -0.5, 0.5},
		{-0.5, -0.5, 0.5},
	}
	var triangles []*Triangle
	for i := 0; i < 4; i++ {
		p0 := base[i]
		p1 := base[(i+1)%4]
		triangles = append(triangles, NewTriangleForPoints(p0, apex, p1))
	}
	triangles = append(triangles,
		NewTriangleForPoints(base[0], base[1], base[2]),
		NewTriangleForPoints(base[0], base[2], base[3]))
	return NewTriangleMesh(triangles)
}

// NewGridMesh returns a line grid on the XZ plane centered at the origin,
// with size cells in each direction.
func NewGridMesh(size int, spacing float64) *Mesh {
	var lines []*Line
	extent := float64(size) * spacing
	for i := -size; i <= size; i++ {
		d := float64(i) * spacing
		lines = append(lines,
			NewLineForPoints(mgl64.Vec3{-extent, 0, d}, mgl64.Vec3{extent, 0, d}),
			NewLineForPoints(mgl64.Vec3{d, 0, -extent}, mgl64.Vec3{d, 0, extent}))
	}
	return NewLineMesh(lines)
}

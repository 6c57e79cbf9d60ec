package arbor

import "github.com/go-gl/mathgl/mgl64"

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max mgl64.Vec3
}

// BoxForBoxes returns the union of the given boxes.
func BoxForBoxes(boxes []Box) Box {
	if len(boxes) == 0 {
		return Box{}
	}
	box := boxes[0]
	for _, b := range boxes[1:] {
		box = box.Extend(b)
	}
	return box
}

func (a Box) Extend(b Box) Box {
	return Box{minVec(a.Min, b.Min), maxVec(a.Max, b.Max)}
}

func (a Box) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

func (a Box) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

// Corners returns the eight corners of the box.
func (a Box) Corners() []mgl64.Vec3 {
	x0, y0, z0 := a.Min[0], a.Min[1], a.Min[2]
	x1, y1, z1 := a.Max[0], a.Max[1], a.Max[2]
	return []mgl64.Vec3{
		{x0, y0, z0},
		{x1, y0, z0},
		{x0, y1, z0},
		{x1, y1, z0},
		{x0, y0, z1},
		{x1, y0, z1},
		{x0, y1, z1},
		{x1, y1, z1},
	}
}

func (a Box) Contains(p mgl64.Vec3) bool {
	return p[0] >= a.Min[0] && p[0] <= a.Max[0] &&
		p[1] >= a.Min[1] && p[1] <= a.Max[1] &&
		p[2] >= a.Min[2] && p[2] <= a.Max[2]
}

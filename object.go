package arbor

import "github.com/go-gl/mathgl/mgl64"

// ShapeKind enumerates the closed set of drawable shapes.
type ShapeKind int

const (
	ShapeMesh ShapeKind = iota
	ShapeCube
	ShapeSphere
	ShapeCylinder
	ShapeLetterH
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeMesh:
		return "Mesh"
	case ShapeCube:
		return "Cube"
	case ShapeSphere:
		return "Sphere"
	case ShapeCylinder:
		return "Cylinder"
	case ShapeLetterH:
		return "LetterH"
	}
	return "Unknown"
}

// Shape is a shape kind plus its dimensions. The zero values of unused
// fields are ignored.
type Shape struct {
	Kind   ShapeKind
	Radius float64 // sphere, cylinder
	Height float64 // cylinder, letter
	Width  float64 // letter
	Depth  float64 // letter
}

// buildShapeMesh bakes a shape's dimensions into a mesh. Objects then draw
// through their world matrix alone, so every kind follows the same path.
func buildShapeMesh(s Shape) *Mesh {
	switch s.Kind {
	case ShapeCube:
		return NewCubeMesh()
	case ShapeSphere:
		m := NewSphereMesh(32, 32)
		m.Transform(mgl64.Scale3D(s.Radius, s.Radius, s.Radius))
		return m
	case ShapeCylinder:
		m := NewCylinderMesh(32)
		m.Transform(mgl64.Scale3D(s.Radius, s.Height, s.Radius))
		return m
	case ShapeLetterH:
		return NewLetterHMesh(s.Width, s.Height, s.Depth)
	}
	return nil
}

// Object is a drawable scene element: a shape (or custom mesh) with a
// color, owning exactly one Transform. The parent link is kept at the
// object layer and mirrored onto the transforms underneath, so Parent can
// resolve the owning object.
//
// An object without a renderer draws nothing, silently.
type Object struct {
	name           string
	shape          Shape
	mesh           *Mesh
	color          Color
	texture        Texture
	useVertexColor bool

	transform *Transform
	renderer  *Renderer

	parent   *Object
	children []*Object
}

// NewMeshObject wraps an arbitrary mesh in an object.
func NewMeshObject(mesh *Mesh, color Color) *Object {
	return &Object{
		shape:     Shape{Kind: ShapeMesh},
		mesh:      mesh,
		color:     color,
		transform: NewTransform(),
	}
}

func NewCubeObject(color Color) *Object {
	return newShapeObject(Shape{Kind: ShapeCube}, color)
}

func NewSphereObject(radius float64, color Color) *Object {
	return newShapeObject(Shape{Kind: ShapeSphere, Radius: radius}, color)
}

func NewCylinderObject(height, radius float64, color Color) *Object {
	return newShapeObject(Shape{Kind: ShapeCylinder, Height: height, Radius: radius}, color)
}

func NewLetterHObject(width, height, depth float64, color Color) *Object {
	return newShapeObject(Shape{Kind: ShapeLetterH, Width: width, Height: height, Depth: depth}, color)
}

func newShapeObject(shape Shape, color Color) *Object {
	return &Object{
		shape:     shape,
		mesh:      buildShapeMesh(shape),
		color:     color,
		transform: NewTransform(),
	}
}

func (o *Object) Name() string     { return o.name }
func (o *Object) Shape() Shape     { return o.shape }
func (o *Object) Mesh() *Mesh      { return o.mesh }
func (o *Object) Color() Color     { return o.color }
func (o *Object) SetColor(c Color) { o.color = c }
func (o *Object) Texture() Texture { return o.texture }
func (o *Object) SetTexture(t Texture) {
	o.texture = t
}

// SetUseVertexColor switches fragment shading to the interpolated vertex
// colors, ignoring the object color and texture.
func (o *Object) SetUseVertexColor(use bool) {
	o.useVertexColor = use
}

func (o *Object) SetRenderer(r *Renderer) { o.renderer = r }

// Transform exposes the owned transform for direct manipulation.
func (o *Object) Transform() *Transform { return o.transform }

// Transform forwarding.

func (o *Object) SetPosition(p mgl64.Vec3)    { o.transform.SetPosition(p) }
func (o *Object) SetRotation(q mgl64.Quat)    { o.transform.SetRotation(q) }
func (o *Object) SetEulerAngles(d mgl64.Vec3) { o.transform.SetEulerAngles(d) }
func (o *Object) SetScale(s mgl64.Vec3)       { o.transform.SetScale(s) }
func (o *Object) Position() mgl64.Vec3        { return o.transform.Position() }
func (o *Object) Rotation() mgl64.Quat        { return o.transform.Rotation() }
func (o *Object) EulerAngles() mgl64.Vec3     { return o.transform.EulerAngles() }
func (o *Object) Scale() mgl64.Vec3           { return o.transform.Scale() }

func (o *Object) Translate(v mgl64.Vec3, space Space) { o.transform.Translate(v, space) }
func (o *Object) Rotate(q mgl64.Quat, space Space)    { o.transform.Rotate(q, space) }
func (o *Object) RotateAxis(axis mgl64.Vec3, angleDegrees float64, space Space) {
	o.transform.RotateAxis(axis, angleDegrees, space)
}
func (o *Object) ScaleBy(factor mgl64.Vec3) { o.transform.ScaleBy(factor) }

// ModelMatrix returns the transform's world matrix.
func (o *Object) ModelMatrix() mgl64.Mat4 { return o.transform.WorldMatrix() }

// SetParent parents this object (and its transform) under another object.
// A nil parent detaches. Cycles are rejected with ErrTransformCycle.
func (o *Object) SetParent(parent *Object) error {
	var pt *Transform
	if parent != nil {
		pt = parent.transform
	}
	if err := o.transform.SetParent(pt); err != nil {
		return err
	}
	if o.parent != nil {
		o.parent.unlinkChild(o)
	}
	o.parent = parent
	if parent != nil {
		parent.children = append(parent.children, o)
	}
	return nil
}

// Parent returns the owning parent object, or nil for roots.
func (o *Object) Parent() *Object { return o.parent }

// Children returns a copy of the child list.
func (o *Object) Children() []*Object {
	out := make([]*Object, len(o.children))
	copy(out, o.children)
	return out
}

// AddChild parents the given object under this one.
func (o *Object) AddChild(child *Object) error {
	if child == nil || child == o {
		return nil
	}
	return child.SetParent(o)
}

func (o *Object) unlinkChild(child *Object) {
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// detach severs the object from the hierarchy: it leaves its parent and
// its children become roots. Called when the object is removed from a
// scene.
func (o *Object) detach() {
	if o.parent != nil {
		o.parent.unlinkChild(o)
		o.parent = nil
		o.transform.SetParent(nil)
	}
	for _, child := range o.children {
		child.parent = nil
	}
	o.children = o.children[:0]
	o.transform.DetachChildren()
}

// Draw renders the object through its full world matrix. Without a
// renderer or a mesh this is a silent no-op.
func (o *Object) Draw() {
	if o.renderer == nil || o.mesh == nil {
		return
	}
	o.renderer.SetColor(o.color)
	o.renderer.DrawMeshMatrix(o.mesh, o.ModelMatrix(), o)
}

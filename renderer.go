package arbor

import (
	"image"
	"image/png"
	"io"

	"github.com/go-gl/mathgl/mgl64"
)

// Renderer exposes shape-level draw calls over a software rasterization
// context. It keeps a current color, view and projection matrices, and a
// cache of unit meshes for the primitives. Shape dimensions go into the
// model matrix; scene objects instead bake dimensions into their meshes
// and draw through DrawMeshMatrix.
//
// Renderer is not safe for concurrent use; draw calls themselves fan out
// across CPUs internally.
type Renderer struct {
	ctx        *Context
	color      Color
	view       mgl64.Mat4
	projection mgl64.Mat4

	// brush supplies the current color to shaders during immediate-mode
	// primitive draws
	brush *Object

	cube     *Mesh
	sphere   *Mesh
	cylinder *Mesh
	cone     *Mesh
	plane    *Mesh
	torus    *Mesh
	pyramid  *Mesh
}

// NewRenderer returns a renderer with a Phong shader, an identity view
// and projection, and white as the current color.
func NewRenderer(width, height int) *Renderer {
	shader := NewPhongShader(
		mgl64.Ident4(),
		mgl64.Vec3{-0.5, 1, 0.75},
		mgl64.Vec3{0, 0, 5},
		Gray(0.3),
		Gray(0.7),
	)
	r := &Renderer{
		ctx:        NewContext(width, height, shader),
		color:      White,
		view:       mgl64.Ident4(),
		projection: mgl64.Ident4(),
	}
	r.brush = NewMeshObject(nil, White)
	return r
}

// Context exposes the underlying rasterization context for pipeline
// tweaks (wireframe, culling, line width).
func (r *Renderer) Context() *Context { return r.ctx }

func (r *Renderer) SetShader(s Shader) { r.ctx.Shader = s }
func (r *Renderer) SetColor(c Color)   { r.color = c; r.brush.color = c }
func (r *Renderer) Color() Color       { return r.color }

func (r *Renderer) SetViewMatrix(m mgl64.Mat4)       { r.view = m }
func (r *Renderer) SetProjectionMatrix(m mgl64.Mat4) { r.projection = m }

// SetCamera sets the view and projection from a camera and points the
// Phong shader's specular camera at its eye.
func (r *Renderer) SetCamera(c *Camera) {
	r.view = c.ViewMatrix()
	r.projection = c.ProjectionMatrix()
	if s, ok := r.ctx.Shader.(*PhongShader); ok {
		s.CameraPosition = c.Eye
	}
}

// Clear resets the color buffer to the clear color and the depth buffer.
func (r *Renderer) Clear() {
	r.ctx.ClearColorBuffer()
	r.ctx.ClearDepthBuffer()
}

func (r *Renderer) ClearWith(c Color) {
	r.ctx.ClearColor = c
	r.Clear()
}

func (r *Renderer) Image() image.Image { return r.ctx.Image() }

func (r *Renderer) WritePNG(w io.Writer) error {
	return png.Encode(w, r.ctx.Image())
}

func (r *Renderer) SavePNG(path string) error {
	return SavePNG(path, r.ctx.Image())
}

// DrawMeshMatrix draws a mesh under a model matrix, on behalf of the
// given object (nil shades plain white). The shader's matrix is swapped
// to projection*view*model for the duration of the call.
func (r *Renderer) DrawMeshMatrix(mesh *Mesh, model mgl64.Mat4, from *Object) {
	mvp := r.projection.Mul4(r.view).Mul4(model)
	switch s := r.ctx.Shader.(type) {
	case *PhongShader:
		prev := s.Matrix
		s.Matrix = mvp
		r.ctx.DrawMesh(mesh, from)
		s.Matrix = prev
	case *ToonShader:
		prev := s.Matrix
		s.Matrix = mvp
		r.ctx.DrawMesh(mesh, from)
		s.Matrix = prev
	case *SolidColorShader:
		prev := s.Matrix
		s.Matrix = mvp
		r.ctx.DrawMesh(mesh, from)
		s.Matrix = prev
	default:
		r.ctx.DrawMesh(mesh, from)
	}
}

// DrawCube draws a unit cube scaled, rotated (Euler degrees) and
// translated by the given components.
func (r *Renderer) DrawCube(position, scale, rotationDeg mgl64.Vec3) {
	if r.cube == nil {
		r.cube = NewCubeMesh()
	}
	rot := mgl64.AnglesToQuat(
		mgl64.DegToRad(rotationDeg[0]),
		mgl64.DegToRad(rotationDeg[1]),
		mgl64.DegToRad(rotationDeg[2]),
		mgl64.XYZ,
	).Mat4()
	model := mgl64.Translate3D(position[0], position[1], position[2]).
		Mul4(rot).
		Mul4(mgl64.Scale3D(scale[0], scale[1], scale[2]))
	r.DrawMeshMatrix(r.cube, model, r.brush)
}

func (r *Renderer) DrawSphere(position mgl64.Vec3, radius float64) {
	if r.sphere == nil {
		r.sphere = NewSphereMesh(32, 32)
	}
	model := mgl64.Translate3D(position[0], position[1], position[2]).
		Mul4(mgl64.Scale3D(radius, radius, radius))
	r.DrawMeshMatrix(r.sphere, model, r.brush)
}

func (r *Renderer) DrawCylinder(position mgl64.Vec3, height, radius float64) {
	if r.cylinder == nil {
		r.cylinder = NewCylinderMesh(32)
	}
	model := mgl64.Translate3D(position[0], position[1], position[2]).
		Mul4(mgl64.Scale3D(radius, height, radius))
	r.DrawMeshMatrix(r.cylinder, model, r.brush)
}

func (r *Renderer) DrawCone(position mgl64.Vec3, height, radius float64) {
	if r.cone == nil {
		r.cone = NewConeMesh(32)
	}
	model := mgl64.Translate3D(position[0], position[1], position[2]).
		Mul4(mgl64.Scale3D(radius, height, radius))
	r.DrawMeshMatrix(r.cone, model, r.brush)
}

func (r *Renderer) DrawPlane(position mgl64.Vec3, size mgl64.Vec2) {
	if r.plane == nil {
		r.plane = NewPlaneMesh()
	}
	model := mgl64.Translate3D(position[0], position[1], position[2]).
		Mul4(mgl64.Scale3D(size[0], 1, size[1]))
	r.DrawMeshMatrix(r.plane, model, r.brush)
}

func (r *Renderer) DrawTorus(position mgl64.Vec3, majorRadius, minorRadius float64) {
	// the torus is parameterized directly; no unit mesh to cache
	if r.torus == nil {
		r.torus = NewTorusMesh(0.5, 0.2, 32, 32)
	}
	scale := majorRadius / 0.5
	model := mgl64.Translate3D(position[0], position[1], position[2]).
		Mul4(mgl64.Scale3D(scale, minorRadius/0.2, scale))
	r.DrawMeshMatrix(r.torus, model, r.brush)
}

func (r *Renderer) DrawPyramid(position mgl64.Vec3, baseSize, height float64) {
	if r.pyramid == nil {
		r.pyramid = NewPyramidMesh()
	}
	model := mgl64.Translate3D(position[0], position[1], position[2]).
		Mul4(mgl64.Scale3D(baseSize, height, baseSize))
	r.DrawMeshMatrix(r.pyramid, model, r.brush)
}

func (r *Renderer) DrawGrid(position mgl64.Vec3, size int, spacing float64) {
	grid := NewGridMesh(size, spacing)
	model := mgl64.Translate3D(position[0], position[1], position[2])
	r.DrawMeshMatrix(grid, model, r.brush)
}

// DrawLine draws a single world-space line in the given color, leaving
// the current color untouched.
func (r *Renderer) DrawLine(start, end mgl64.Vec3, color Color) {
	prev := r.color
	r.SetColor(color)
	l := NewLineForPoints(start, end)
	l.SetColor(color)
	r.DrawMeshMatrix(NewLineMesh([]*Line{l}), mgl64.Ident4(), r.brush)
	r.SetColor(prev)
}

// DrawCoordinateSystem draws the three world axes in red, green and blue.
func (r *Renderer) DrawCoordinateSystem(length float64) {
	r.DrawLine(mgl64.Vec3{}, mgl64.Vec3{length, 0, 0}, RGB(1, 0, 0))
	r.DrawLine(mgl64.Vec3{}, mgl64.Vec3{0, length, 0}, RGB(0, 1, 0))
	r.DrawLine(mgl64.Vec3{}, mgl64.Vec3{0, 0, length}, RGB(0, 0, 1))
}

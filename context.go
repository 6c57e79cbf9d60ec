package arbor

import (
	"image"
	"math"
	"runtime"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

type Face int

const (
	_ Face = iota
	FaceCW
	FaceCCW
)

type Cull int

const (
	_ Cull = iota
	CullNone
	CullFront
	CullBack
)

// Context is a software rasterization target: a color buffer, a depth
// buffer and the pipeline state needed to draw meshes into them.
type Context struct {
	Width        int
	Height       int
	Shader       Shader
	ColorBuffer  *image.NRGBA
	DepthBuffer  []float64
	ClearColor   Color
	ReadDepth    bool
	WriteDepth   bool
	WriteColor   bool
	AlphaBlend   bool
	Wireframe    bool
	FrontFace    Face
	Cull         Cull
	LineWidth    float64
	DepthBias    float64
	screenMatrix mgl64.Mat4
	locks        []sync.Mutex
}

func NewContext(width, height int, shader Shader) *Context {
	dc := &Context{}
	dc.Width = width
	dc.Height = height
	dc.Shader = shader
	dc.ColorBuffer = image.NewNRGBA(image.Rect(0, 0, width, height))
	dc.DepthBuffer = make([]float64, width*height)
	dc.ClearColor = Transparent
	dc.ReadDepth = true
	dc.WriteDepth = true
	dc.WriteColor = true
	dc.AlphaBlend = true
	dc.Wireframe = false
	dc.FrontFace = FaceCCW
	dc.Cull = CullBack
	dc.LineWidth = 2
	dc.DepthBias = 0
	dc.screenMatrix = screenMatrix(width, height)
	dc.locks = make([]sync.Mutex, 256)
	dc.ClearDepthBuffer()
	return dc
}

// screenMatrix maps NDC [-1,1] to pixel coordinates with Y pointing down
// and depth into [0,1].
func screenMatrix(width, height int) mgl64.Mat4 {
	w := float64(width) / 2
	h := float64(height) / 2
	return mgl64.Scale3D(w, h, 0.5).
		Mul4(mgl64.Translate3D(1, 1, 1)).
		Mul4(mgl64.Scale3D(1, -1, 1))
}

func (dc *Context) Image() image.Image {
	return dc.ColorBuffer
}

// ClearColorBufferWith fills the color buffer row by row.
func (dc *Context) ClearColorBufferWith(c Color) {
	nrgba := c.NRGBA()
	row := make([]uint8, dc.Width*4)
	for x := 0; x < dc.Width; x++ {
		i := x * 4
		row[i+0] = nrgba.R
		row[i+1] = nrgba.G
		row[i+2] = nrgba.B
		row[i+3] = nrgba.A
	}
	pix := dc.ColorBuffer.Pix
	stride := dc.ColorBuffer.Stride
	for y := 0; y < dc.Height; y++ {
		copy(pix[y*stride:], row)
	}
}

func (dc *Context) ClearColorBuffer() {
	dc.ClearColorBufferWith(dc.ClearColor)
}

func (dc *Context) ClearDepthBuffer() {
	for i := range dc.DepthBuffer {
		dc.DepthBuffer[i] = math.MaxFloat64
	}
}

func edge(a, b, c mgl64.Vec3) float64 {
	return (b[0]-c[0])*(a[1]-c[1]) - (b[1]-c[1])*(a[0]-c[0])
}

func (dc *Context) rasterize(v0, v1, v2 Vertex, s0, s1, s2 mgl64.Vec3, from *Object) {
	min := floorVec(minVec(s0, minVec(s1, s2)))
	max := ceilVec(maxVec(s0, maxVec(s1, s2)))

	x0 := ClampInt(int(min[0]), 0, dc.Width-1)
	x1 := ClampInt(int(max[0]), 0, dc.Width-1)
	y0 := ClampInt(int(min[1]), 0, dc.Height-1)
	y1 := ClampInt(int(max[1]), 0, dc.Height-1)

	p := mgl64.Vec3{float64(x0) + 0.5, float64(y0) + 0.5, 0}
	w00 := edge(s1, s2, p)
	w01 := edge(s2, s0, p)
	w02 := edge(s0, s1, p)
	a01 := s1[1] - s0[1]
	b01 := s0[0] - s1[0]
	a12 := s2[1] - s1[1]
	b12 := s1[0] - s2[0]
	a20 := s0[1] - s2[1]
	b20 := s2[0] - s0[0]

	area := edge(s0, s1, s2)
	if area == 0 {
		return
	}
	ra := 1 / area
	r0 := 1 / v0.Output.W()
	r1 := 1 / v1.Output.W()
	r2 := 1 / v2.Output.W()

	stride := dc.Width
	pix := dc.ColorBuffer.Pix

	for y := y0; y <= y1; y++ {
		w0 := w00
		w1 := w01
		w2 := w02
		for x := x0; x <= x1; x++ {
			b0 := w0 * ra
			b1 := w1 * ra
			b2 := w2 * ra

			if b0 >= 0 && b1 >= 0 && b2 >= 0 {
				i := y*stride + x
				z := b0*s0[2] + b1*s1[2] + b2*s2[2]
				bz := z + dc.DepthBias

				// early depth test
				if !dc.ReadDepth || bz <= dc.DepthBuffer[i] {
					b := mgl64.Vec4{b0 * r0, b1 * r1, b2 * r2, 0}
					b[3] = 1 / (b[0] + b[1] + b[2])
					v := InterpolateVertices(v0, v1, v2, b)

					colorVal := dc.Shader.Fragment(v, from)

					if colorVal.A > 0 {
						lock := &dc.locks[(x+y)&255]
						lock.Lock()
						if !dc.ReadDepth || bz <= dc.DepthBuffer[i] {
							if dc.WriteDepth {
								dc.DepthBuffer[i] = z
							}
							if dc.WriteColor {
								dc.setPixel(colorVal, pix, i*4)
							}
						}
						lock.Unlock()
					}
				}
			}
			w0 += a12
			w1 += a20
			w2 += a01
		}
		w00 += b12
		w01 += b20
		w02 += b01
	}
}

func (dc *Context) setPixel(c Color, pix []uint8, i int) {
	if dc.AlphaBlend && c.A < 1 {
		sr, sg, sb, sa := c.NRGBA().RGBA()
		a := (0xffff - sa) * 0x101

		dr := uint32(pix[i+0])
		dg := uint32(pix[i+1])
		db := uint32(pix[i+2])
		da := uint32(pix[i+3])

		pix[i+0] = uint8((dr*a/0xffff + sr) >> 8)
		pix[i+1] = uint8((dg*a/0xffff + sg) >> 8)
		pix[i+2] = uint8((db*a/0xffff + sb) >> 8)
		pix[i+3] = uint8((da*a/0xffff + sa) >> 8)
	} else {
		nrgba := c.NRGBA()
		pix[i+0] = nrgba.R
		pix[i+1] = nrgba.G
		pix[i+2] = nrgba.B
		pix[i+3] = nrgba.A
	}
}

func (dc *Context) line(v0, v1 Vertex, s0, s1 mgl64.Vec3, from *Object) {
	d := s1.Sub(s0)
	if d.Len() == 0 {
		return
	}
	n := perpendicular(d).Mul(dc.LineWidth / 2)
	ext := d.Normalize().Mul(dc.LineWidth / 2)
	s0 = s0.Sub(ext)
	s1 = s1.Add(ext)
	s00 := s0.Add(n)
	s01 := s0.Sub(n)
	s10 := s1.Add(n)
	s11 := s1.Sub(n)
	dc.rasterize(v1, v0, v0, s11, s01, s00, from)
	dc.rasterize(v1, v1, v0, s10, s11, s00, from)
}

func (dc *Context) drawClippedLine(v0, v1 Vertex, from *Object) {
	ndc0 := v0.Output.Mul(1 / v0.Output.W()).Vec3()
	ndc1 := v1.Output.Mul(1 / v1.Output.W()).Vec3()
	s0 := mgl64.TransformCoordinate(ndc0, dc.screenMatrix)
	s1 := mgl64.TransformCoordinate(ndc1, dc.screenMatrix)
	dc.line(v0, v1, s0, s1, from)
}

func (dc *Context) drawClippedTriangle(v0, v1, v2 Vertex, from *Object) {
	ndc0 := v0.Output.Mul(1 / v0.Output.W()).Vec3()
	ndc1 := v1.Output.Mul(1 / v1.Output.W()).Vec3()
	ndc2 := v2.Output.Mul(1 / v2.Output.W()).Vec3()

	if dc.Cull != CullNone {
		area := (ndc1[0]-ndc0[0])*(ndc2[1]-ndc0[1]) - (ndc2[0]-ndc0[0])*(ndc1[1]-ndc0[1])
		if dc.FrontFace == FaceCW {
			area = -area
		}
		if dc.Cull == CullBack && area <= 0 {
			return
		}
		if dc.Cull == CullFront && area >= 0 {
			return
		}
	}

	s0 := mgl64.TransformCoordinate(ndc0, dc.screenMatrix)
	s1 := mgl64.TransformCoordinate(ndc1, dc.screenMatrix)
	s2 := mgl64.TransformCoordinate(ndc2, dc.screenMatrix)

	if dc.Wireframe {
		dc.line(v0, v1, s0, s1, from)
		dc.line(v1, v2, s1, s2, from)
		dc.line(v2, v0, s2, s0, from)
		return
	}
	dc.rasterize(v0, v1, v2, s0, s1, s2, from)
}

func (dc *Context) DrawTriangle(t *Triangle, from *Object) {
	v1 := dc.Shader.Vertex(t.V1)
	v2 := dc.Shader.Vertex(t.V2)
	v3 := dc.Shader.Vertex(t.V3)

	if v1.Outside() || v2.Outside() || v3.Outside() {
		for _, c := range ClipTriangle(NewTriangle(v1, v2, v3)) {
			dc.drawClippedTriangle(c.V1, c.V2, c.V3, from)
		}
	} else {
		dc.drawClippedTriangle(v1, v2, v3, from)
	}
}

func (dc *Context) DrawLine(l *Line, from *Object) {
	v1 := dc.Shader.Vertex(l.V1)
	v2 := dc.Shader.Vertex(l.V2)

	if v1.Outside() || v2.Outside() {
		if c := ClipLine(NewLine(v1, v2)); c != nil {
			dc.drawClippedLine(c.V1, c.V2, from)
		}
	} else {
		dc.drawClippedLine(v1, v2, from)
	}
}

// DrawMesh rasterizes a mesh, batching triangles across the logical CPUs.
func (dc *Context) DrawMesh(mesh *Mesh, from *Object) {
	var wg sync.WaitGroup
	wn := runtime.NumCPU()
	wg.Add(wn)
	for wi := 0; wi < wn; wi++ {
		go func(wi int) {
			for i := wi; i < len(mesh.Triangles); i += wn {
				dc.DrawTriangle(mesh.Triangles[i], from)
			}
			for i := wi; i < len(mesh.Lines); i += wn {
				dc.DrawLine(mesh.Lines[i], from)
			}
			wg.Done()
		}(wi)
	}
	wg.Wait()
}

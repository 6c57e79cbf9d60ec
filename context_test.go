package arbor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countLitPixels(ctx *Context) int {
	lit := 0
	pix := ctx.ColorBuffer.Pix
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != 0 || pix[i+1] != 0 || pix[i+2] != 0 {
			lit++
		}
	}
	return lit
}

func TestDrawTriangleFillsPixels(t *testing.T) {
	shader := NewSolidColorShader(mgl64.Ident4(), RGB(1, 0, 0))
	ctx := NewContext(64, 64, shader)
	ctx.Cull = CullNone
	ctx.ClearColorBufferWith(Black)

	tri := NewTriangleForPoints(
		mgl64.Vec3{-0.5, -0.5, 0},
		mgl64.Vec3{0.5, -0.5, 0},
		mgl64.Vec3{0, 0.5, 0},
	)
	ctx.DrawTriangle(tri, nil)

	assert.Greater(t, countLitPixels(ctx), 100)

	// the image center lies inside the triangle
	c := ctx.ColorBuffer.NRGBAAt(32, 32)
	assert.EqualValues(t, 255, c.R)
	assert.EqualValues(t, 0, c.G)
}

func TestBackfaceCulling(t *testing.T) {
	shader := NewSolidColorShader(mgl64.Ident4(), White)
	ctx := NewContext(32, 32, shader)
	ctx.ClearColorBufferWith(Black)

	// clockwise in NDC, so a back face under FaceCCW
	tri := NewTriangleForPoints(
		mgl64.Vec3{-0.5, -0.5, 0},
		mgl64.Vec3{0, 0.5, 0},
		mgl64.Vec3{0.5, -0.5, 0},
	)
	ctx.DrawTriangle(tri, nil)
	assert.Zero(t, countLitPixels(ctx))

	ctx.Cull = CullNone
	ctx.DrawTriangle(tri, nil)
	assert.NotZero(t, countLitPixels(ctx))
}

func TestDepthTest(t *testing.T) {
	shader := NewSolidColorShader(mgl64.Ident4(), RGB(1, 0, 0))
	ctx := NewContext(32, 32, shader)
	ctx.Cull = CullNone
	ctx.ClearColorBufferWith(Black)

	near := NewTriangleForPoints(
		mgl64.Vec3{-0.8, -0.8, 0.1},
		mgl64.Vec3{0.8, -0.8, 0.1},
		mgl64.Vec3{0, 0.8, 0.1},
	)
	ctx.DrawTriangle(near, nil)

	// a farther triangle in green must not overwrite the near one
	shader.Color = RGB(0, 1, 0)
	far := NewTriangleForPoints(
		mgl64.Vec3{-0.8, -0.8, 0.9},
		mgl64.Vec3{0.8, -0.8, 0.9},
		mgl64.Vec3{0, 0.8, 0.9},
	)
	ctx.DrawTriangle(far, nil)

	c := ctx.ColorBuffer.NRGBAAt(16, 16)
	assert.EqualValues(t, 255, c.R)
	assert.EqualValues(t, 0, c.G)
}

func TestClippingDoesNotPanic(t *testing.T) {
	shader := NewSolidColorShader(mgl64.Ident4(), White)
	ctx := NewContext(32, 32, shader)
	ctx.Cull = CullNone

	// partially and fully outside geometry
	assert.NotPanics(t, func() {
		ctx.DrawTriangle(NewTriangleForPoints(
			mgl64.Vec3{-5, 0, 0},
			mgl64.Vec3{5, 0, 0},
			mgl64.Vec3{0, 5, 0},
		), nil)
		ctx.DrawTriangle(NewTriangleForPoints(
			mgl64.Vec3{10, 10, 10},
			mgl64.Vec3{11, 10, 10},
			mgl64.Vec3{10, 11, 10},
		), nil)
	})
}

func TestDegenerateTriangleIsSkipped(t *testing.T) {
	shader := NewSolidColorShader(mgl64.Ident4(), White)
	ctx := NewContext(32, 32, shader)
	ctx.Cull = CullNone
	assert.NotPanics(t, func() {
		ctx.DrawTriangle(NewTriangleForPoints(
			mgl64.Vec3{0, 0, 0},
			mgl64.Vec3{0, 0, 0},
			mgl64.Vec3{0, 0, 0},
		), nil)
	})
}

func TestDrawLineFillsPixels(t *testing.T) {
	shader := NewSolidColorShader(mgl64.Ident4(), White)
	ctx := NewContext(64, 64, shader)
	ctx.Cull = CullNone
	ctx.ClearColorBufferWith(Black)

	l := NewLineForPoints(mgl64.Vec3{-0.8, 0, 0}, mgl64.Vec3{0.8, 0, 0})
	ctx.DrawLine(l, nil)
	assert.NotZero(t, countLitPixels(ctx))
}

func TestDrawMeshRendersCube(t *testing.T) {
	cam := NewCamera(mgl64.Vec3{2, 2, 3}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}, 60, 1, 0.1, 10)
	shader := NewPhongShader(cam.ViewProjection(), mgl64.Vec3{1, 1, 1}, cam.Eye, Gray(0.3), Gray(0.7))
	ctx := NewContext(64, 64, shader)
	ctx.ClearColorBufferWith(Black)

	require.NotPanics(t, func() { ctx.DrawMesh(NewCubeMesh(), nil) })
	assert.Greater(t, countLitPixels(ctx), 50)
}

func TestWireframeMode(t *testing.T) {
	shader := NewSolidColorShader(mgl64.Ident4(), White)
	ctx := NewContext(64, 64, shader)
	ctx.Cull = CullNone
	ctx.Wireframe = true
	ctx.ClearColorBufferWith(Black)

	tri := NewTriangleForPoints(
		mgl64.Vec3{-0.8, -0.8, 0},
		mgl64.Vec3{0.8, -0.8, 0},
		mgl64.Vec3{0, 0.8, 0},
	)
	ctx.DrawTriangle(tri, nil)

	lit := countLitPixels(ctx)
	assert.NotZero(t, lit)

	// the interior stays empty in wireframe mode
	c := ctx.ColorBuffer.NRGBAAt(32, 40)
	assert.EqualValues(t, 0, c.R)
	assert.Less(t, lit, 2000)
}

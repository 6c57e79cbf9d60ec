package arbor

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRenderer(size int) *Renderer {
	r := NewRenderer(size, size)
	cam := NewCamera(mgl64.Vec3{3, 3, 5}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}, 60, 1, 0.1, 100)
	r.SetCamera(cam)
	r.ClearWith(Black)
	return r
}

func TestRendererImmediateShapes(t *testing.T) {
	r := testRenderer(64)
	r.SetColor(RGB(1, 0.5, 0))

	assert.NotPanics(t, func() {
		r.DrawCube(mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, mgl64.Vec3{0, 30, 0})
		r.DrawSphere(mgl64.Vec3{2, 0, 0}, 0.5)
		r.DrawCylinder(mgl64.Vec3{-2, 0, 0}, 1, 0.3)
		r.DrawCone(mgl64.Vec3{0, 2, 0}, 1, 0.5)
		r.DrawTorus(mgl64.Vec3{0, -2, 0}, 1, 0.2)
		r.DrawPyramid(mgl64.Vec3{0, 0, -2}, 1, 1)
		r.DrawPlane(mgl64.Vec3{0, -1, 0}, mgl64.Vec2{4, 4})
		r.DrawGrid(mgl64.Vec3{}, 4, 0.5)
		r.DrawCoordinateSystem(2)
	})
	assert.NotZero(t, countLitPixels(r.Context()))
}

func TestRendererDrawLineRestoresColor(t *testing.T) {
	r := testRenderer(32)
	r.SetColor(RGB(0.1, 0.2, 0.3))
	r.DrawLine(mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, RGB(1, 1, 0))
	assert.Equal(t, RGB(0.1, 0.2, 0.3), r.Color())
}

func TestRendererSetCameraAimsSpecular(t *testing.T) {
	r := NewRenderer(8, 8)
	cam := NewCamera(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}, 45, 1, 0.1, 10)
	r.SetCamera(cam)
	shader, ok := r.Context().Shader.(*PhongShader)
	require.True(t, ok)
	assert.Equal(t, cam.Eye, shader.CameraPosition)
}

func TestRendererWritePNG(t *testing.T) {
	r := testRenderer(16)
	var buf bytes.Buffer
	require.NoError(t, r.WritePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
}

func TestDrawMeshMatrixPreservesShaderMatrix(t *testing.T) {
	r := testRenderer(16)
	shader := r.Context().Shader.(*PhongShader)
	before := shader.Matrix
	r.DrawMeshMatrix(NewCubeMesh(), mgl64.Translate3D(1, 2, 3), nil)
	assert.Equal(t, before, shader.Matrix)
}

package arbor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Shader transforms vertices into clip space and shades fragments. The
// object a fragment came from supplies its base color and texture; a nil
// object shades with plain white.
type Shader interface {
	Vertex(Vertex) Vertex
	Fragment(Vertex, *Object) Color
}

func objectSurface(from *Object) (Color, Texture, bool) {
	if from == nil {
		return White, nil, false
	}
	return from.color, from.texture, from.useVertexColor
}

// PhongShader implements Phong shading with an optional texture and an
// optional view-dependent rim outline.
type PhongShader struct {
	Matrix         mgl64.Mat4
	LightDirection mgl64.Vec3
	CameraPosition mgl64.Vec3
	AmbientColor   Color
	DiffuseColor   Color
	SpecularColor  Color
	SpecularPower  float64
	EnableOutline  bool
	OutlineColor   Color
	OutlineFactor  float64 // lower is thicker
}

func NewPhongShader(matrix mgl64.Mat4, lightDirection, cameraPosition mgl64.Vec3, ambient, diffuse Color) *PhongShader {
	return &PhongShader{
		Matrix:         matrix,
		LightDirection: lightDirection.Normalize(),
		CameraPosition: cameraPosition,
		AmbientColor:   ambient,
		DiffuseColor:   diffuse,
		SpecularColor:  White,
		SpecularPower:  0,
		OutlineColor:   Black,
		OutlineFactor:  0.05,
	}
}

func (shader *PhongShader) Vertex(v Vertex) Vertex {
	v.Output = shader.Matrix.Mul4x1(v.Position.Vec4(1))
	normalMatrix := shader.Matrix.Inv().Transpose()
	v.Normal = mgl64.TransformNormal(v.Normal, normalMatrix).Normalize()
	return v
}

func (shader *PhongShader) Fragment(v Vertex, from *Object) Color {
	if shader.EnableOutline {
		viewDirection := shader.CameraPosition.Sub(v.Position).Normalize()
		if math.Abs(viewDirection.Dot(v.Normal)) < shader.OutlineFactor {
			return shader.OutlineColor
		}
	}
	color, texture, useVertexColor := objectSurface(from)
	if useVertexColor {
		return v.Color
	}
	if texture != nil {
		sample := texture.Sample(v.Texture.X(), v.Texture.Y())
		if sample.A > 0 {
			color = color.Lerp(sample.DivScalar(sample.A), sample.A)
		}
	}
	light := shader.AmbientColor
	diffuse := math.Max(v.Normal.Dot(shader.LightDirection), 0)
	light = light.Add(shader.DiffuseColor.MulScalar(diffuse))
	if diffuse > 0 && shader.SpecularPower > 0 {
		camera := shader.CameraPosition.Sub(v.Position).Normalize()
		reflected := reflect(shader.LightDirection.Mul(-1), v.Normal)
		specular := math.Max(camera.Dot(reflected), 0)
		if specular > 0 {
			specular = math.Pow(specular, shader.SpecularPower)
			light = light.Add(shader.SpecularColor.MulScalar(specular))
		}
	}
	if color.A < 1 {
		return color.Mul(light).Min(White).DivScalar(color.A).Alpha(color.A)
	}
	return color.Mul(light).Min(White).Alpha(color.A)
}

func reflect(i, n mgl64.Vec3) mgl64.Vec3 {
	return i.Sub(n.Mul(2 * i.Dot(n)))
}

// SolidColorShader renders everything in one color, optionally extruding
// along the normals for outline passes.
type SolidColorShader struct {
	Matrix    mgl64.Mat4
	Color     Color
	Thickness float64
}

func NewSolidColorShader(matrix mgl64.Mat4, color Color) *SolidColorShader {
	return &SolidColorShader{Matrix: matrix, Color: color}
}

func (s *SolidColorShader) Vertex(v Vertex) Vertex {
	p := v.Position.Add(v.Normal.Mul(s.Thickness))
	v.Output = s.Matrix.Mul4x1(p.Vec4(1))
	return v
}

func (s *SolidColorShader) Fragment(v Vertex, from *Object) Color {
	return s.Color
}

// ToonShader implements cel shading: brightness snaps to a small set of
// tones before the base color is applied.
type ToonShader struct {
	Matrix         mgl64.Mat4
	LightDirection mgl64.Vec3
	Highlight      Color
	Midtone        Color
	Shadow         Color
	DeepShadow     Color
}

func NewToonShader(matrix mgl64.Mat4, lightDirection mgl64.Vec3) *ToonShader {
	return &ToonShader{
		Matrix:         matrix,
		LightDirection: lightDirection.Normalize(),
		Highlight:      HexColor("ffffaa"),
		Midtone:        HexColor("ff8844"),
		Shadow:         HexColor("a12c00"),
		DeepShadow:     HexColor("4d1100"),
	}
}

func (s *ToonShader) Vertex(v Vertex) Vertex {
	v.Output = s.Matrix.Mul4x1(v.Position.Vec4(1))
	normalMatrix := s.Matrix.Inv().Transpose()
	v.Normal = mgl64.TransformNormal(v.Normal, normalMatrix).Normalize()
	return v
}

func (s *ToonShader) Fragment(v Vertex, from *Object) Color {
	intensity := math.Max(0, v.Normal.Dot(s.LightDirection))
	var tone Color
	switch {
	case intensity > 0.8:
		tone = s.Highlight
	case intensity > 0.5:
		tone = s.Midtone
	case intensity > 0.2:
		tone = s.Shadow
	default:
		tone = s.DeepShadow
	}
	color, texture, _ := objectSurface(from)
	if texture != nil {
		return texture.Sample(v.Texture.X(), v.Texture.Y()).Mul(tone)
	}
	return color.Mul(tone)
}

package arbor

import (
	"image"
	"image/png"
	"math"
	"os"

	_ "image/jpeg" // register the decoder for LoadImage

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func ClampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// LoadImage decodes a PNG or JPEG file.
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "arbor: open image %q", path)
	}
	defer file.Close()
	im, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "arbor: decode image %q", path)
	}
	return im, nil
}

// SavePNG writes an image to a PNG file.
func SavePNG(path string, im image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "arbor: create %q", path)
	}
	defer file.Close()
	if err := png.Encode(file, im); err != nil {
		return errors.Wrapf(err, "arbor: encode %q", path)
	}
	return nil
}

// mulElem multiplies two vectors component-wise.
func mulElem(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func minVec(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2])}
}

func maxVec(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2])}
}

func floorVec(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Floor(v[0]), math.Floor(v[1]), math.Floor(v[2])}
}

func ceilVec(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Ceil(v[0]), math.Ceil(v[1]), math.Ceil(v[2])}
}

// perpendicular returns a unit vector perpendicular to v in screen space.
func perpendicular(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{-v[1], v[0], 0}.Normalize()
}

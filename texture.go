package arbor

import (
	"bytes"
	"image"
	"math"
	"net/http"
	"time"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// maxTextureSize bounds the longer edge of a sampled texture; larger
// images are downscaled on load.
const maxTextureSize = 1024

type Texture interface {
	Sample(u, v float64) Color
	BilinearSample(u, v float64) Color
}

type ImageTexture struct {
	Width  int
	Height int
	Image  image.Image
}

func NewImageTexture(im image.Image) Texture {
	w := im.Bounds().Dx()
	h := im.Bounds().Dy()
	if w > maxTextureSize || h > maxTextureSize {
		if w >= h {
			im = resize.Resize(maxTextureSize, 0, im, resize.Bilinear)
		} else {
			im = resize.Resize(0, maxTextureSize, im, resize.Bilinear)
		}
		w = im.Bounds().Dx()
		h = im.Bounds().Dy()
	}
	return &ImageTexture{Width: w, Height: h, Image: im}
}

func LoadTexture(path string) (Texture, error) {
	im, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return NewImageTexture(im), nil
}

func LoadTextureFromURL(url string) (Texture, error) {
	client := http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "arbor: fetch texture %q", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("arbor: fetch texture %q: status %s", url, resp.Status)
	}
	im, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "arbor: decode texture %q", url)
	}
	return NewImageTexture(im), nil
}

func NewTextureFromBytes(data []byte) (Texture, error) {
	im, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "arbor: decode texture bytes")
	}
	return NewImageTexture(im), nil
}

func (t *ImageTexture) Sample(u, v float64) Color {
	// wrap, then flip V for standard UV coords
	u = u - math.Floor(u)
	v = 1 - (v - math.Floor(v))

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	return MakeColor(t.Image.At(x, y))
}

func (t *ImageTexture) BilinearSample(u, v float64) Color {
	u = u - math.Floor(u)
	v = 1 - (v - math.Floor(v))

	fx := u*float64(t.Width) - 0.5
	fy := v*float64(t.Height) - 0.5
	x0 := ClampInt(int(math.Floor(fx)), 0, t.Width-1)
	y0 := ClampInt(int(math.Floor(fy)), 0, t.Height-1)
	x1 := ClampInt(x0+1, 0, t.Width-1)
	y1 := ClampInt(y0+1, 0, t.Height-1)
	tx := Clamp(fx-float64(x0), 0, 1)
	ty := Clamp(fy-float64(y0), 0, 1)

	c00 := MakeColor(t.Image.At(x0, y0))
	c10 := MakeColor(t.Image.At(x1, y0))
	c01 := MakeColor(t.Image.At(x0, y1))
	c11 := MakeColor(t.Image.At(x1, y1))
	return c00.Lerp(c10, tx).Lerp(c01.Lerp(c11, tx), ty)
}

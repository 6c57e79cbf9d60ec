package arbor

import (
	"image"
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Engine ties a scene, a camera and a renderer into a frame loop. There
// is no window; frames are rendered offscreen at a fixed timestep and
// read back as images.
type Engine struct {
	Width      int
	Height     int
	Renderer   *Renderer
	Scene      *Scene
	Camera     *Camera
	ClearColor Color
	TargetFPS  int

	frame  int
	update func(dt float64)
}

// NewEngine creates an engine with an empty scene and a default camera
// looking at the origin from +Z. fps fixes the timestep passed to the
// update callback.
func NewEngine(width, height, fps int) *Engine {
	if fps <= 0 {
		fps = 60
	}
	renderer := NewRenderer(width, height)
	aspect := float64(width) / float64(height)
	e := &Engine{
		Width:      width,
		Height:     height,
		Renderer:   renderer,
		Scene:      NewScene(renderer),
		Camera:     NewCamera(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}, 60, aspect, 0.1, 100),
		ClearColor: Gray(0.1),
		TargetFPS:  fps,
	}
	return e
}

// SetUpdate installs the per-frame callback. dt is the fixed timestep in
// seconds.
func (e *Engine) SetUpdate(update func(dt float64)) {
	e.update = update
}

// Frame returns the number of frames stepped so far.
func (e *Engine) Frame() int { return e.frame }

// Step advances the simulation by one fixed timestep without rendering.
func (e *Engine) Step() {
	if e.update != nil {
		e.update(1 / float64(e.TargetFPS))
	}
	e.frame++
}

// RenderFrame draws the current scene state and returns the image. The
// returned image aliases the renderer's buffer and is valid until the
// next clear or draw.
func (e *Engine) RenderFrame() image.Image {
	e.Renderer.SetCamera(e.Camera)
	e.Renderer.ClearWith(e.ClearColor)
	e.Scene.DrawAll()
	return e.Renderer.Image()
}

// Run steps and renders the given number of frames, calling each after
// its render. A nil each just advances the loop.
func (e *Engine) Run(frames int, each func(frame int, img image.Image) error) error {
	for i := 0; i < frames; i++ {
		e.Step()
		img := e.RenderFrame()
		if each != nil {
			if err := each(e.frame, img); err != nil {
				return errors.Wrapf(err, "arbor: frame %d", e.frame)
			}
		}
	}
	return nil
}

// WriteFrame renders the current state and writes it as PNG.
func (e *Engine) WriteFrame(w io.Writer) error {
	e.RenderFrame()
	return e.Renderer.WritePNG(w)
}

// SaveFrame renders the current state and saves it as PNG.
func (e *Engine) SaveFrame(path string) error {
	e.RenderFrame()
	return e.Renderer.SavePNG(path)
}

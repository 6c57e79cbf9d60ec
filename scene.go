package arbor

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Default colors for objects created without one.
var (
	DefaultCubeColor     = Color{1, 0.5, 0.2, 1}
	DefaultSphereColor   = Color{0.2, 0.8, 0.2, 1}
	DefaultCylinderColor = Color{0.2, 0.5, 1, 1}
	DefaultLetterColor   = Color{0.9, 0.2, 0.2, 1}
)

// Scene owns a collection of objects in insertion order and indexes them
// by name. Objects are created through the scene, drawn in insertion order
// and destroyed with the scene. Auto-generated names use a counter owned
// by the scene, so scenes never interfere with each other.
type Scene struct {
	renderer    *Renderer
	objects     []*Object
	byName      map[string]*Object
	nameCounter int
}

// NewScene returns an empty scene. The renderer may be nil; objects then
// draw nothing until one is set.
func NewScene(renderer *Renderer) *Scene {
	return &Scene{
		renderer: renderer,
		byName:   make(map[string]*Object),
	}
}

// SetRenderer replaces the renderer on the scene and on every owned
// object.
func (s *Scene) SetRenderer(renderer *Renderer) {
	s.renderer = renderer
	for _, o := range s.objects {
		o.SetRenderer(renderer)
	}
}

// CreateCube adds a unit cube. Rotation is Euler angles in degrees. An
// empty name is auto-generated; a duplicate explicit name is rejected.
func (s *Scene) CreateCube(name string, position, rotationDeg, scale mgl64.Vec3, color Color) (*Object, error) {
	o := NewCubeObject(defaultColor(color, DefaultCubeColor))
	o.SetPosition(position)
	o.SetEulerAngles(rotationDeg)
	o.SetScale(scale)
	return s.add("Cube", name, o)
}

// CreateSphere adds a sphere of the given radius.
func (s *Scene) CreateSphere(name string, position mgl64.Vec3, radius float64, color Color) (*Object, error) {
	o := NewSphereObject(radius, defaultColor(color, DefaultSphereColor))
	o.SetPosition(position)
	return s.add("Sphere", name, o)
}

// CreateCylinder adds a cylinder of the given height and radius.
func (s *Scene) CreateCylinder(name string, position mgl64.Vec3, height, radius float64, color Color) (*Object, error) {
	o := NewCylinderObject(height, radius, defaultColor(color, DefaultCylinderColor))
	o.SetPosition(position)
	return s.add("Cylinder", name, o)
}

// CreateLetterH adds the composite letter H object.
func (s *Scene) CreateLetterH(name string, position mgl64.Vec3, width, height, depth float64, color Color) (*Object, error) {
	o := NewLetterHObject(width, height, depth, defaultColor(color, DefaultLetterColor))
	o.SetPosition(position)
	return s.add("LetterH", name, o)
}

// CreateMeshObject adds an object wrapping an arbitrary mesh.
func (s *Scene) CreateMeshObject(name string, mesh *Mesh, color Color) (*Object, error) {
	return s.add("Mesh", name, NewMeshObject(mesh, color))
}

func (s *Scene) add(prefix, name string, o *Object) (*Object, error) {
	if name == "" {
		name = s.generateName(prefix)
	} else if _, exists := s.byName[name]; exists {
		return nil, errors.Errorf("arbor: scene already has an object named %q", name)
	}
	o.name = name
	o.SetRenderer(s.renderer)
	s.objects = append(s.objects, o)
	s.byName[name] = o
	return o, nil
}

func (s *Scene) generateName(prefix string) string {
	// generated names may still collide with explicit ones; skip past those
	for {
		name := fmt.Sprintf("%s_%d", prefix, s.nameCounter)
		s.nameCounter++
		if _, exists := s.byName[name]; !exists {
			return name
		}
	}
}

// Object returns the object with the given name, or nil.
func (s *Scene) Object(name string) *Object {
	return s.byName[name]
}

// ObjectAt returns the object at the given insertion index, or nil.
func (s *Scene) ObjectAt(index int) *Object {
	if index < 0 || index >= len(s.objects) {
		return nil
	}
	return s.objects[index]
}

// RemoveObject removes and detaches the named object. No-op when absent.
func (s *Scene) RemoveObject(name string) {
	o, ok := s.byName[name]
	if !ok {
		return
	}
	delete(s.byName, name)
	for i, obj := range s.objects {
		if obj == o {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			break
		}
	}
	o.detach()
}

// RemoveObjectAt removes and detaches the object at the given index.
// No-op when out of range.
func (s *Scene) RemoveObjectAt(index int) {
	if index < 0 || index >= len(s.objects) {
		return
	}
	o := s.objects[index]
	delete(s.byName, o.name)
	s.objects = append(s.objects[:index], s.objects[index+1:]...)
	o.detach()
}

// Clear removes every object.
func (s *Scene) Clear() {
	for _, o := range s.objects {
		o.detach()
	}
	s.objects = s.objects[:0]
	s.byName = make(map[string]*Object)
}

// DrawAll draws every object in insertion order. Draw order is
// independent of the transform hierarchy; each object resolves its own
// world matrix on demand.
func (s *Scene) DrawAll() {
	if s.renderer == nil {
		log.Printf("arbor: scene drawn without a renderer")
		return
	}
	for _, o := range s.objects {
		o.Draw()
	}
}

// TranslateAll translates every object in the given space.
func (s *Scene) TranslateAll(translation mgl64.Vec3, space Space) {
	for _, o := range s.objects {
		o.Translate(translation, space)
	}
}

// RotateAll rotates every object in the given space.
func (s *Scene) RotateAll(rotation mgl64.Quat, space Space) {
	for _, o := range s.objects {
		o.Rotate(rotation, space)
	}
}

// ScaleAll multiplies every object's scale component-wise.
func (s *Scene) ScaleAll(factor mgl64.Vec3) {
	for _, o := range s.objects {
		o.ScaleBy(factor)
	}
}

// ObjectCount returns the number of owned objects.
func (s *Scene) ObjectCount() int {
	return len(s.objects)
}

func defaultColor(c, fallback Color) Color {
	if c == (Color{}) {
		return fallback
	}
	return c
}

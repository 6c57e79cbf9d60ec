package arbor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Space selects the coordinate space a translation or rotation applies in.
type Space int

const (
	// SpaceLocal applies the operation relative to the transform's own
	// orientation.
	SpaceLocal Space = iota
	// SpaceWorld applies the operation in global coordinates.
	SpaceWorld
)

// ErrTransformCycle is returned when reparenting would make a transform an
// ancestor of itself.
var ErrTransformCycle = errors.New("arbor: transform parenting would create a cycle")

// Transform holds position, rotation and scale, composes them into local
// and world matrices, and links into a parent/child hierarchy. Matrices are
// cached and recomputed lazily on first access after a mutation; mutating a
// transform schedules its children for recomputation on their next access.
//
// Transform is not safe for concurrent use.
type Transform struct {
	position mgl64.Vec3
	rotation mgl64.Quat
	scaling  mgl64.Vec3

	local mgl64.Mat4
	world mgl64.Mat4
	dirty bool

	parent   *Transform
	children []*Transform
}

// NewTransform returns an identity transform at the origin.
func NewTransform() *Transform {
	return &Transform{
		rotation: mgl64.QuatIdent(),
		scaling:  mgl64.Vec3{1, 1, 1},
		local:    mgl64.Ident4(),
		world:    mgl64.Ident4(),
		dirty:    true,
	}
}

// NewTransformAt returns a transform with the given components. The
// rotation is normalized.
func NewTransformAt(position mgl64.Vec3, rotation mgl64.Quat, scale mgl64.Vec3) *Transform {
	t := NewTransform()
	t.position = position
	t.rotation = rotation.Normalize()
	t.scaling = scale
	return t
}

func (t *Transform) SetPosition(position mgl64.Vec3) {
	t.position = position
	t.markDirty()
}

// SetRotation replaces the rotation. The quaternion is normalized.
func (t *Transform) SetRotation(rotation mgl64.Quat) {
	t.rotation = rotation.Normalize()
	t.markDirty()
}

// SetEulerAngles replaces the rotation with one built from Euler angles in
// degrees, applied in XYZ order.
func (t *Transform) SetEulerAngles(degrees mgl64.Vec3) {
	t.rotation = mgl64.AnglesToQuat(
		mgl64.DegToRad(degrees[0]),
		mgl64.DegToRad(degrees[1]),
		mgl64.DegToRad(degrees[2]),
		mgl64.XYZ,
	).Normalize()
	t.markDirty()
}

func (t *Transform) SetScale(scale mgl64.Vec3) {
	t.scaling = scale
	t.markDirty()
}

// Translate moves the transform. In local space the translation is rotated
// by the current orientation first, so it is relative to where the
// transform is facing.
func (t *Transform) Translate(translation mgl64.Vec3, space Space) {
	if space == SpaceLocal {
		t.position = t.position.Add(t.rotation.Rotate(translation))
	} else {
		t.position = t.position.Add(translation)
	}
	t.markDirty()
}

// Rotate composes a rotation onto the current one: pre-multiplied for
// local space, post-multiplied for world space.
func (t *Transform) Rotate(rotation mgl64.Quat, space Space) {
	if space == SpaceLocal {
		t.rotation = rotation.Mul(t.rotation)
	} else {
		t.rotation = t.rotation.Mul(rotation)
	}
	t.rotation = t.rotation.Normalize()
	t.markDirty()
}

// RotateAxis rotates about an axis by an angle in degrees. The axis is
// normalized internally.
func (t *Transform) RotateAxis(axis mgl64.Vec3, angleDegrees float64, space Space) {
	q := mgl64.QuatRotate(mgl64.DegToRad(angleDegrees), axis.Normalize())
	t.Rotate(q, space)
}

// ScaleBy multiplies the current scale component-wise.
func (t *Transform) ScaleBy(factor mgl64.Vec3) {
	t.scaling = mulElem(t.scaling, factor)
	t.markDirty()
}

func (t *Transform) Position() mgl64.Vec3 { return t.position }
func (t *Transform) Rotation() mgl64.Quat { return t.rotation }
func (t *Transform) Scale() mgl64.Vec3    { return t.scaling }

// EulerAngles returns the rotation as XYZ Euler angles in degrees. The
// representation is not canonical after composed rotations.
func (t *Transform) EulerAngles() mgl64.Vec3 {
	e := quatToEuler(t.rotation)
	return mgl64.Vec3{mgl64.RadToDeg(e[0]), mgl64.RadToDeg(e[1]), mgl64.RadToDeg(e[2])}
}

// LocalMatrix returns the cached translation*rotation*scale matrix,
// recomputing it first if the transform is dirty.
func (t *Transform) LocalMatrix() mgl64.Mat4 {
	if t.dirty {
		t.updateMatrices()
	}
	return t.local
}

// WorldMatrix returns the cached world matrix, recomputing it first if the
// transform is dirty. The parent chain is forced current first; a parent
// recompute schedules this transform dirty, so a stale cache is never
// observed through the hierarchy.
func (t *Transform) WorldMatrix() mgl64.Mat4 {
	if t.parent != nil {
		t.parent.WorldMatrix()
	}
	if t.dirty {
		t.updateMatrices()
	}
	return t.world
}

// Forward returns the -Z axis rotated by the current orientation.
func (t *Transform) Forward() mgl64.Vec3 {
	return t.rotation.Rotate(mgl64.Vec3{0, 0, -1})
}

// Right returns the +X axis rotated by the current orientation.
func (t *Transform) Right() mgl64.Vec3 {
	return t.rotation.Rotate(mgl64.Vec3{1, 0, 0})
}

// Up returns the +Y axis rotated by the current orientation.
func (t *Transform) Up() mgl64.Vec3 {
	return t.rotation.Rotate(mgl64.Vec3{0, 1, 0})
}

// SetParent moves the transform under a new parent, detaching it from the
// old one. A nil parent makes the transform a root. Reparenting under a
// descendant of itself returns ErrTransformCycle and leaves the hierarchy
// unchanged.
func (t *Transform) SetParent(parent *Transform) error {
	if t.parent == parent {
		return nil
	}
	for a := parent; a != nil; a = a.parent {
		if a == t {
			return ErrTransformCycle
		}
	}
	if t.parent != nil {
		t.parent.unlinkChild(t)
	}
	t.parent = parent
	if parent != nil {
		parent.children = append(parent.children, t)
	}
	t.markDirty()
	return nil
}

func (t *Transform) Parent() *Transform { return t.parent }

// Children returns a copy of the child list.
func (t *Transform) Children() []*Transform {
	out := make([]*Transform, len(t.children))
	copy(out, t.children)
	return out
}

// AddChild parents the given transform under this one.
func (t *Transform) AddChild(child *Transform) error {
	if child == nil || child == t {
		return nil
	}
	return child.SetParent(t)
}

// RemoveChild detaches a direct child, making it a root. No-op when the
// transform is not a direct child.
func (t *Transform) RemoveChild(child *Transform) {
	if child == nil || child.parent != t {
		return
	}
	t.unlinkChild(child)
	child.parent = nil
	child.markDirty()
}

// DetachChildren clears the parent link of every child. Children become
// roots; they are not otherwise modified.
func (t *Transform) DetachChildren() {
	for _, child := range t.children {
		child.parent = nil
		child.markDirty()
	}
	t.children = t.children[:0]
}

func (t *Transform) unlinkChild(child *Transform) {
	for i, c := range t.children {
		if c == child {
			t.children = append(t.children[:i], t.children[i+1:]...)
			return
		}
	}
}

// TransformPoint maps a local-space point to world space.
func (t *Transform) TransformPoint(point mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(point, t.WorldMatrix())
}

// InverseTransformPoint maps a world-space point to local space.
func (t *Transform) InverseTransformPoint(point mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(point, t.WorldMatrix().Inv())
}

// Reset restores identity position, rotation and scale. Hierarchy links
// are preserved.
func (t *Transform) Reset() {
	t.position = mgl64.Vec3{}
	t.rotation = mgl64.QuatIdent()
	t.scaling = mgl64.Vec3{1, 1, 1}
	t.markDirty()
}

// LerpTransforms interpolates two transforms: position and scale linearly,
// rotation spherically. The result is a fresh root transform.
func LerpTransforms(a, b *Transform, t float64) *Transform {
	out := NewTransform()
	out.position = a.position.Add(b.position.Sub(a.position).Mul(t))
	out.rotation = mgl64.QuatSlerp(a.rotation, b.rotation, t)
	out.scaling = a.scaling.Add(b.scaling.Sub(a.scaling).Mul(t))
	return out
}

// SlerpTransforms is an alias for LerpTransforms; the rotation component
// already interpolates spherically there.
func SlerpTransforms(a, b *Transform, t float64) *Transform {
	return LerpTransforms(a, b, t)
}

func (t *Transform) updateMatrices() {
	translation := mgl64.Translate3D(t.position[0], t.position[1], t.position[2])
	rotation := t.rotation.Mat4()
	scaling := mgl64.Scale3D(t.scaling[0], t.scaling[1], t.scaling[2])

	t.local = translation.Mul4(rotation).Mul4(scaling)
	if t.parent != nil {
		t.world = t.parent.WorldMatrix().Mul4(t.local)
	} else {
		t.world = t.local
	}
	t.dirty = false

	// invalidation propagates further only when a child is itself queried
	for _, child := range t.children {
		child.markDirty()
	}
}

func (t *Transform) markDirty() {
	t.dirty = true
}

// quatToEuler extracts XYZ-order Euler angles in radians, inverting the
// convention AnglesToQuat uses with mgl64.XYZ.
func quatToEuler(q mgl64.Quat) (e mgl64.Vec3) {
	sinrCosp := 2 * (q.W*q.X() - q.Y()*q.Z())
	cosrCosp := 1 - 2*(q.X()*q.X()+q.Y()*q.Y())
	e[0] = math.Atan2(sinrCosp, cosrCosp)

	sinp := 2 * (q.W*q.Y() + q.X()*q.Z())
	if math.Abs(sinp) >= 1 {
		e[1] = math.Copysign(math.Pi/2, sinp)
	} else {
		e[1] = math.Asin(sinp)
	}

	sinyCosp := 2 * (q.W*q.Z() - q.X()*q.Y())
	cosyCosp := 1 - 2*(q.Y()*q.Y()+q.Z()*q.Z())
	e[2] = math.Atan2(sinyCosp, cosyCosp)
	return e
}

package refframe

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotation is the rotation capability set the frame machinery needs:
// composition, inversion and application to a vector. Implementations must
// represent proper rotations only, so Rotate preserves vector magnitude.
type Rotation[R, V any] interface {
	// Compose returns the rotation equivalent to applying other first, then
	// the receiver.
	Compose(R) R
	Inverse() R
	Rotate(V) V
	Identity() R
}

// Rotation2d is a rotation in the plane, stored as an angle in radians.
// The zero value is the identity rotation.
type Rotation2d struct {
	angle float64
}

// NewRotation2d creates a rotation by the given angle in radians.
func NewRotation2d(radians float64) Rotation2d {
	return Rotation2d{angle: radians}
}

// Rotation2dFromDegrees creates a rotation by the given angle in degrees.
func Rotation2dFromDegrees(degrees float64) Rotation2d {
	return Rotation2d{angle: mgl64.DegToRad(degrees)}
}

// Radians returns the rotation angle in radians.
func (r Rotation2d) Radians() float64 {
	return r.angle
}

// Degrees returns the rotation angle in degrees.
func (r Rotation2d) Degrees() float64 {
	return mgl64.RadToDeg(r.angle)
}

func (r Rotation2d) Compose(other Rotation2d) Rotation2d {
	return Rotation2d{angle: r.angle + other.angle}
}

func (r Rotation2d) Inverse() Rotation2d {
	return Rotation2d{angle: -r.angle}
}

func (r Rotation2d) Identity() Rotation2d {
	return Rotation2d{}
}

func (r Rotation2d) Rotate(v mgl64.Vec2) mgl64.Vec2 {
	s, c := math.Sincos(r.angle)

	return mgl64.Vec2{v.X()*c - v.Y()*s, v.X()*s + v.Y()*c}
}

// Mat2 returns the rotation as a 2x2 rotation matrix.
func (r Rotation2d) Mat2() mgl64.Mat2 {
	return mgl64.Rotate2D(r.angle)
}

// ApproxEqual reports whether two rotations describe the same orientation,
// comparing angles modulo a full turn.
func (r Rotation2d) ApproxEqual(other Rotation2d) bool {
	delta := math.Mod(r.angle-other.angle, 2*math.Pi)
	if delta > math.Pi {
		delta -= 2 * math.Pi
	}
	if delta < -math.Pi {
		delta += 2 * math.Pi
	}

	return math.Abs(delta) < DefaultTolerance
}

// Rotation3d is a rotation in 3D space, stored as a unit quaternion.
// The zero value is the identity rotation.
type Rotation3d struct {
	q mgl64.Quat
}

// NewRotation3d creates a rotation from a quaternion. The quaternion is
// normalized so the result always represents a proper rotation.
func NewRotation3d(q mgl64.Quat) Rotation3d {
	return Rotation3d{q: q.Normalize()}
}

// Rotation3dFromAxisAngle creates a rotation of the given angle in radians
// about the given axis.
func Rotation3dFromAxisAngle(radians float64, axis mgl64.Vec3) Rotation3d {
	return Rotation3d{q: mgl64.QuatRotate(radians, axis.Normalize())}
}

// Rotation3dFromEuler creates a rotation from XYZ Euler angles in radians.
func Rotation3dFromEuler(x, y, z float64) Rotation3d {
	return Rotation3d{q: mgl64.AnglesToQuat(x, y, z, mgl64.XYZ)}
}

// quat returns the stored quaternion, mapping the zero value to the
// identity so a zero Rotation3d is usable as-is.
func (r Rotation3d) quat() mgl64.Quat {
	if r.q.W == 0 && r.q.V.Len() == 0 {
		return mgl64.QuatIdent()
	}

	return r.q
}

// Quat returns the rotation as a unit quaternion.
func (r Rotation3d) Quat() mgl64.Quat {
	return r.quat()
}

// Mat3 returns the rotation as a 3x3 rotation matrix.
func (r Rotation3d) Mat3() mgl64.Mat3 {
	return r.quat().Mat4().Mat3()
}

// Compose renormalizes the product to keep the unit-norm invariant under
// floating-point drift.
func (r Rotation3d) Compose(other Rotation3d) Rotation3d {
	return Rotation3d{q: r.quat().Mul(other.quat()).Normalize()}
}

// Inverse returns the conjugate, which inverts a unit quaternion.
func (r Rotation3d) Inverse() Rotation3d {
	return Rotation3d{q: r.quat().Conjugate()}
}

func (r Rotation3d) Identity() Rotation3d {
	return Rotation3d{q: mgl64.QuatIdent()}
}

func (r Rotation3d) Rotate(v mgl64.Vec3) mgl64.Vec3 {
	return r.quat().Rotate(v)
}

// ApproxEqual reports whether two rotations describe the same orientation.
// q and -q encode the same rotation, so the sign is fixed before comparing.
func (r Rotation3d) ApproxEqual(other Rotation3d) bool {
	a, b := r.quat(), other.quat()
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}

	return a.ApproxEqualThreshold(b, DefaultTolerance)
}

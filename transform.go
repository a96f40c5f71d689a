package refframe

import "github.com/go-gl/mathgl/mgl64"

// Transform is a resolved rotation + translation pair mapping coordinates
// expressed in one frame into coordinates expressed in another. It is
// returned by Frame.TransformTo so a single resolution can be applied to
// many vectors.
type Transform[V Vector[V], R Rotation[R, V]] struct {
	Rotation    R
	Translation V
}

type (
	Transform2d = Transform[mgl64.Vec2, Rotation2d]
	Transform3d = Transform[mgl64.Vec3, Rotation3d]
)

// Compose returns the transform equivalent to applying other first, then t.
func (t Transform[V, R]) Compose(other Transform[V, R]) Transform[V, R] {
	return Transform[V, R]{
		Rotation:    t.Rotation.Compose(other.Rotation),
		Translation: t.Rotation.Rotate(other.Translation).Add(t.Translation),
	}
}

// Inverse returns the transform that undoes t.
func (t Transform[V, R]) Inverse() Transform[V, R] {
	inverse := t.Rotation.Inverse()

	return Transform[V, R]{
		Rotation:    inverse,
		Translation: inverse.Rotate(t.Translation.Mul(-1)),
	}
}

// Apply maps a point: rotation followed by translation.
func (t Transform[V, R]) Apply(v V) V {
	return t.Rotation.Rotate(v).Add(t.Translation)
}

// ApplyDirection maps a direction: rotation only, translation never applies
// to displacement vectors.
func (t Transform[V, R]) ApplyDirection(v V) V {
	return t.Rotation.Rotate(v)
}

func identityTransform[V Vector[V], R Rotation[R, V]]() Transform[V, R] {
	var (
		zero     V
		rotation R
	)

	return Transform[V, R]{Rotation: rotation.Identity(), Translation: zero}
}

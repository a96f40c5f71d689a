package refframe

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Direction is a displacement vector bound to a frame. Unlike a Position it
// is invariant under translation: converting a direction to another frame
// applies rotation only.
type Direction[V Vector[V], R Rotation[R, V]] struct {
	Coordinates V
	Frame       *Frame[V, R]
}

type (
	Direction2d = Direction[mgl64.Vec2, Rotation2d]
	Direction3d = Direction[mgl64.Vec3, Rotation3d]
)

// NewDirection2d creates a displacement with the given coordinates in frame.
func NewDirection2d(coordinates mgl64.Vec2, frame *Frame2d) Direction2d {
	return Direction2d{Coordinates: coordinates, Frame: frame}
}

// NewDirection3d creates a displacement with the given coordinates in frame.
func NewDirection3d(coordinates mgl64.Vec3, frame *Frame3d) Direction3d {
	return Direction3d{Coordinates: coordinates, Frame: frame}
}

// NewDirection2dFromSlice creates a displacement from dynamically sized
// coordinates.
func NewDirection2dFromSlice(coordinates []float64, frame *Frame2d) (Direction2d, error) {
	if frame == nil {
		return Direction2d{}, fmt.Errorf("direction requires a frame: %w", ErrInvalidOperation)
	}
	v, err := Vec2FromSlice(coordinates)
	if err != nil {
		return Direction2d{}, err
	}

	return Direction2d{Coordinates: v, Frame: frame}, nil
}

// NewDirection3dFromSlice creates a displacement from dynamically sized
// coordinates.
func NewDirection3dFromSlice(coordinates []float64, frame *Frame3d) (Direction3d, error) {
	if frame == nil {
		return Direction3d{}, fmt.Errorf("direction requires a frame: %w", ErrInvalidOperation)
	}
	v, err := Vec3FromSlice(coordinates)
	if err != nil {
		return Direction3d{}, err
	}

	return Direction3d{Coordinates: v, Frame: frame}, nil
}

// ToFrame re-expresses the same displacement in target coordinates,
// rotation only.
func (d Direction[V, R]) ToFrame(target *Frame[V, R]) (Direction[V, R], error) {
	transform, err := d.Frame.TransformTo(target)
	if err != nil {
		return Direction[V, R]{}, err
	}

	return Direction[V, R]{Coordinates: transform.ApplyDirection(d.Coordinates), Frame: target}, nil
}

// Equal reports whether both directions denote the same displacement,
// within DefaultTolerance, converting other into d's frame first.
func (d Direction[V, R]) Equal(other Direction[V, R]) (bool, error) {
	return d.EqualTolerance(other, DefaultTolerance)
}

// EqualTolerance is Equal with an explicit absolute tolerance.
func (d Direction[V, R]) EqualTolerance(other Direction[V, R], tolerance float64) (bool, error) {
	converted, err := other.ToFrame(d.Frame)
	if err != nil {
		return false, err
	}

	return d.Coordinates.ApproxEqualThreshold(converted.Coordinates, tolerance), nil
}

// Add sums two displacements, converting other into d's frame first.
func (d Direction[V, R]) Add(other Direction[V, R]) (Direction[V, R], error) {
	converted, err := other.ToFrame(d.Frame)
	if err != nil {
		return Direction[V, R]{}, err
	}

	return Direction[V, R]{Coordinates: d.Coordinates.Add(converted.Coordinates), Frame: d.Frame}, nil
}

// Scale multiplies the displacement by a scalar, in the same frame.
func (d Direction[V, R]) Scale(s float64) Direction[V, R] {
	return Direction[V, R]{Coordinates: d.Coordinates.Mul(s), Frame: d.Frame}
}

// Normalized returns the unit-length displacement with the same direction.
func (d Direction[V, R]) Normalized() (Direction[V, R], error) {
	length := d.Coordinates.Len()
	if length == 0 {
		return Direction[V, R]{}, fmt.Errorf("cannot normalize a zero-length direction: %w", ErrInvalidOperation)
	}

	return Direction[V, R]{Coordinates: d.Coordinates.Mul(1 / length), Frame: d.Frame}, nil
}

package refframe

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Position is a point bound to a frame: its coordinates are the point as
// measured in that frame. Converting a position to another frame applies
// both rotation and translation.
//
// Adding two positions is physically meaningless and has no method; the
// defined arithmetic is Add(Direction) and Sub(Position), which yields the
// displacement between two points as a Direction.
type Position[V Vector[V], R Rotation[R, V]] struct {
	Coordinates V
	Frame       *Frame[V, R]
}

type (
	Position2d = Position[mgl64.Vec2, Rotation2d]
	Position3d = Position[mgl64.Vec3, Rotation3d]
)

// NewPosition2d creates a point with the given coordinates measured in frame.
func NewPosition2d(coordinates mgl64.Vec2, frame *Frame2d) Position2d {
	return Position2d{Coordinates: coordinates, Frame: frame}
}

// NewPosition3d creates a point with the given coordinates measured in frame.
func NewPosition3d(coordinates mgl64.Vec3, frame *Frame3d) Position3d {
	return Position3d{Coordinates: coordinates, Frame: frame}
}

// NewPosition2dFromSlice creates a point from dynamically sized coordinates.
func NewPosition2dFromSlice(coordinates []float64, frame *Frame2d) (Position2d, error) {
	if frame == nil {
		return Position2d{}, fmt.Errorf("position requires a frame: %w", ErrInvalidOperation)
	}
	v, err := Vec2FromSlice(coordinates)
	if err != nil {
		return Position2d{}, err
	}

	return Position2d{Coordinates: v, Frame: frame}, nil
}

// NewPosition3dFromSlice creates a point from dynamically sized coordinates.
func NewPosition3dFromSlice(coordinates []float64, frame *Frame3d) (Position3d, error) {
	if frame == nil {
		return Position3d{}, fmt.Errorf("position requires a frame: %w", ErrInvalidOperation)
	}
	v, err := Vec3FromSlice(coordinates)
	if err != nil {
		return Position3d{}, err
	}

	return Position3d{Coordinates: v, Frame: frame}, nil
}

// ToFrame re-expresses the same physical point in target coordinates.
func (p Position[V, R]) ToFrame(target *Frame[V, R]) (Position[V, R], error) {
	transform, err := p.Frame.TransformTo(target)
	if err != nil {
		return Position[V, R]{}, err
	}

	return Position[V, R]{Coordinates: transform.Apply(p.Coordinates), Frame: target}, nil
}

// Equal reports whether both positions denote the same point in space,
// within DefaultTolerance. The other position is converted into p's frame
// first; raw coordinates of different frames are never compared.
func (p Position[V, R]) Equal(other Position[V, R]) (bool, error) {
	return p.EqualTolerance(other, DefaultTolerance)
}

// EqualTolerance is Equal with an explicit absolute tolerance.
func (p Position[V, R]) EqualTolerance(other Position[V, R], tolerance float64) (bool, error) {
	converted, err := other.ToFrame(p.Frame)
	if err != nil {
		return false, err
	}

	return p.Coordinates.ApproxEqualThreshold(converted.Coordinates, tolerance), nil
}

// Add offsets the point by a direction. The direction is converted into p's
// frame first, so operands bound to different frames of the same tree work.
func (p Position[V, R]) Add(d Direction[V, R]) (Position[V, R], error) {
	converted, err := d.ToFrame(p.Frame)
	if err != nil {
		return Position[V, R]{}, err
	}

	return Position[V, R]{Coordinates: p.Coordinates.Add(converted.Coordinates), Frame: p.Frame}, nil
}

// Sub returns the displacement from other to p, expressed in p's frame.
func (p Position[V, R]) Sub(other Position[V, R]) (Direction[V, R], error) {
	converted, err := other.ToFrame(p.Frame)
	if err != nil {
		return Direction[V, R]{}, err
	}

	return Direction[V, R]{Coordinates: p.Coordinates.Sub(converted.Coordinates), Frame: p.Frame}, nil
}

package refframe

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultTolerance is the absolute tolerance used by Equal on positions,
// directions and rotations.
const DefaultTolerance = 1e-9

// Vector is the vector capability set the frame machinery needs. It is
// satisfied by mgl64.Vec2 and mgl64.Vec3.
type Vector[V any] interface {
	Add(V) V
	Sub(V) V
	Mul(float64) V
	Len() float64
	ApproxEqualThreshold(V, float64) bool
}

// Vec2FromSlice converts dynamically sized coordinates to a Vec2.
func Vec2FromSlice(coordinates []float64) (mgl64.Vec2, error) {
	if len(coordinates) != 2 {
		return mgl64.Vec2{}, fmt.Errorf("expected 2 coordinates, got %d: %w", len(coordinates), ErrDimensionMismatch)
	}

	return mgl64.Vec2{coordinates[0], coordinates[1]}, nil
}

// Vec3FromSlice converts dynamically sized coordinates to a Vec3.
func Vec3FromSlice(coordinates []float64) (mgl64.Vec3, error) {
	if len(coordinates) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("expected 3 coordinates, got %d: %w", len(coordinates), ErrDimensionMismatch)
	}

	return mgl64.Vec3{coordinates[0], coordinates[1], coordinates[2]}, nil
}

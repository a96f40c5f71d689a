package refframe

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionToFrameRotationOnly(t *testing.T) {
	root := &Frame2d{}
	tilted := NewFrame2d(mgl64.Vec2{50, -20}, NewRotation2d(math.Pi/2), root)

	direction := NewDirection2d(mgl64.Vec2{1, 0}, tilted)
	converted, err := direction.ToFrame(root)

	require.NoError(t, err)
	assert.Same(t, root, converted.Frame)
	// Only the quarter turn applies; the (50, -20) offset never does.
	assert.True(t, converted.Coordinates.ApproxEqualThreshold(mgl64.Vec2{0, 1}, testTolerance),
		"ToFrame() = %v, want (0, 1)", converted.Coordinates)
}

func TestDirectionTranslationInvariance(t *testing.T) {
	root := &Frame2d{}
	frame := NewFrame2d(mgl64.Vec2{5, 5}, NewRotation2d(math.Pi/6), root)

	direction := NewDirection2d(mgl64.Vec2{1, 2}, root)
	position := NewPosition2d(mgl64.Vec2{1, 2}, root)

	directionBefore, err := direction.ToFrame(frame)
	require.NoError(t, err)
	positionBefore, err := position.ToFrame(frame)
	require.NoError(t, err)

	frame.LocalPosition = mgl64.Vec2{100, -7}

	directionAfter, err := direction.ToFrame(frame)
	require.NoError(t, err)
	positionAfter, err := position.ToFrame(frame)
	require.NoError(t, err)

	assert.True(t, directionAfter.Coordinates.ApproxEqualThreshold(directionBefore.Coordinates, testTolerance),
		"direction moved with the frame: %v -> %v", directionBefore.Coordinates, directionAfter.Coordinates)
	assert.False(t, positionAfter.Coordinates.ApproxEqualThreshold(positionBefore.Coordinates, testTolerance),
		"position ignored the frame translation: %v", positionAfter.Coordinates)
}

func TestDirectionEqualAcrossFrames(t *testing.T) {
	root := &Frame2d{}
	tilted := NewFrame2d(mgl64.Vec2{3, 3}, NewRotation2d(math.Pi/2), root)

	inRoot := NewDirection2d(mgl64.Vec2{0, 1}, root)
	inTilted := NewDirection2d(mgl64.Vec2{1, 0}, tilted)

	equal, err := inRoot.Equal(inTilted)

	require.NoError(t, err)
	assert.True(t, equal)
}

func TestDirectionAdd(t *testing.T) {
	root := &Frame2d{}
	tilted := NewFrame2d(mgl64.Vec2{9, 9}, NewRotation2d(math.Pi/2), root)

	a := NewDirection2d(mgl64.Vec2{1, 0}, root)
	b := NewDirection2d(mgl64.Vec2{1, 0}, tilted) // (0, 1) in root

	sum, err := a.Add(b)

	require.NoError(t, err)
	assert.Same(t, root, sum.Frame)
	assert.True(t, sum.Coordinates.ApproxEqualThreshold(mgl64.Vec2{1, 1}, testTolerance),
		"Add() = %v, want (1, 1)", sum.Coordinates)
}

func TestDirectionScale(t *testing.T) {
	direction := NewDirection3d(mgl64.Vec3{1, -2, 0.5}, &Frame3d{})

	scaled := direction.Scale(-2)

	assert.True(t, scaled.Coordinates.ApproxEqualThreshold(mgl64.Vec3{-2, 4, -1}, testTolerance))
	assert.Same(t, direction.Frame, scaled.Frame)
}

func TestDirectionNormalized(t *testing.T) {
	frame := &Frame2d{}

	unit, err := NewDirection2d(mgl64.Vec2{3, 4}, frame).Normalized()
	require.NoError(t, err)
	assert.True(t, unit.Coordinates.ApproxEqualThreshold(mgl64.Vec2{0.6, 0.8}, testTolerance),
		"Normalized() = %v", unit.Coordinates)

	_, err = NewDirection2d(mgl64.Vec2{0, 0}, frame).Normalized()
	require.ErrorIs(t, err, ErrInvalidOperation)
}

func TestNewDirectionFromSlice(t *testing.T) {
	direction, err := NewDirection3dFromSlice([]float64{1, 2, 3}, &Frame3d{})
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, direction.Coordinates)

	_, err = NewDirection3dFromSlice([]float64{1, 2}, &Frame3d{})
	require.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = NewDirection2dFromSlice([]float64{1, 2}, nil)
	require.ErrorIs(t, err, ErrInvalidOperation)
}

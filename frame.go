// Package refframe models hierarchical reference frames for 2D and 3D
// spatial vectors. Frames form a tree in which every frame holds a pose
// (position and rotation) relative to its parent; positions and directions
// bound to one frame can be re-expressed in any other frame of the same
// tree without tracking the intermediate transforms by hand.
package refframe

import (
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Frame is a node in a tree of reference frames. LocalPosition and
// LocalRotation describe its pose relative to Parent and may be mutated in
// place; every resolution reads the live values, nothing derived is cached.
// Parent is a non-owning reference, nil marks the root of a tree. The core
// provides no locking: callers mutating and resolving frames concurrently
// must serialize access themselves.
type Frame[V Vector[V], R Rotation[R, V]] struct {
	LocalPosition V
	LocalRotation R
	Parent        *Frame[V, R]
}

type (
	Frame2d = Frame[mgl64.Vec2, Rotation2d]
	Frame3d = Frame[mgl64.Vec3, Rotation3d]
)

// NewFrame2d creates a 2D frame with the given pose relative to parent.
// A nil parent makes the frame the root of its own tree; pass Origin2d()
// to attach it to the shared root.
func NewFrame2d(position mgl64.Vec2, rotation Rotation2d, parent *Frame2d) *Frame2d {
	return &Frame2d{LocalPosition: position, LocalRotation: rotation, Parent: parent}
}

// NewFrame3d creates a 3D frame with the given pose relative to parent.
// A nil parent makes the frame the root of its own tree; pass Origin3d()
// to attach it to the shared root.
func NewFrame3d(position mgl64.Vec3, rotation Rotation3d, parent *Frame3d) *Frame3d {
	return &Frame3d{LocalPosition: position, LocalRotation: rotation, Parent: parent}
}

var (
	origin2d = sync.OnceValue(func() *Frame2d { return &Frame2d{} })
	origin3d = sync.OnceValue(func() *Frame3d { return &Frame3d{} })
)

// Origin2d returns the shared 2D root frame: zero position, identity
// rotation, no parent. It is usable as a default global reference.
func Origin2d() *Frame2d {
	return origin2d()
}

// Origin3d returns the shared 3D root frame: zero position, identity
// rotation, no parent. It is usable as a default global reference.
func Origin3d() *Frame3d {
	return origin3d()
}

// Ancestors returns the chain of frames from f up to and including its
// root, following Parent links. A chain that revisits a frame fails with
// ErrCycleDetected instead of looping.
func (f *Frame[V, R]) Ancestors() ([]*Frame[V, R], error) {
	var chain []*Frame[V, R]
	seen := make(map[*Frame[V, R]]struct{})

	for current := f; current != nil; current = current.Parent {
		if _, ok := seen[current]; ok {
			return nil, fmt.Errorf("ancestor chain revisits a frame after %d steps: %w", len(chain), ErrCycleDetected)
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain, nil
}

// Root returns the root frame of the tree f belongs to.
func (f *Frame[V, R]) Root() (*Frame[V, R], error) {
	chain, err := f.Ancestors()
	if err != nil {
		return nil, err
	}

	return chain[len(chain)-1], nil
}

// localTransform maps frame-local coordinates into parent coordinates:
// v_parent = R(v_local) + p.
func (f *Frame[V, R]) localTransform() Transform[V, R] {
	return Transform[V, R]{Rotation: f.LocalRotation, Translation: f.LocalPosition}
}

// TransformTo resolves the single transform that maps coordinates expressed
// in f into coordinates expressed in target. Both frames must belong to the
// same tree; the resolver walks both ancestor chains to their lowest common
// ancestor, composes the up-chain from f and applies the inverted down-chain
// to target.
func (f *Frame[V, R]) TransformTo(target *Frame[V, R]) (Transform[V, R], error) {
	if f == target {
		return identityTransform[V, R](), nil
	}

	sourceChain, err := f.Ancestors()
	if err != nil {
		return Transform[V, R]{}, err
	}
	targetChain, err := target.Ancestors()
	if err != nil {
		return Transform[V, R]{}, err
	}

	targetIndex := make(map[*Frame[V, R]]int, len(targetChain))
	for i, frame := range targetChain {
		targetIndex[frame] = i
	}

	// The first frame of the source chain that also appears in the target
	// chain is the lowest common ancestor.
	sourceSteps, targetSteps := -1, -1
	for i, frame := range sourceChain {
		if j, ok := targetIndex[frame]; ok {
			sourceSteps, targetSteps = i, j
			break
		}
	}
	if sourceSteps < 0 {
		return Transform[V, R]{}, fmt.Errorf("cannot transform between disjoint trees: %w", ErrNoCommonAncestor)
	}

	up := identityTransform[V, R]()
	for _, frame := range sourceChain[:sourceSteps] {
		up = frame.localTransform().Compose(up)
	}

	down := identityTransform[V, R]()
	for _, frame := range targetChain[:targetSteps] {
		down = frame.localTransform().Compose(down)
	}

	return down.Inverse().Compose(up), nil
}

// Transform maps point coordinates expressed in f into target coordinates,
// rotation and translation included. Directions go through
// Direction.ToFrame instead, which never applies translation.
func (f *Frame[V, R]) Transform(target *Frame[V, R], v V) (V, error) {
	transform, err := f.TransformTo(target)
	if err != nil {
		var zero V
		return zero, err
	}

	return transform.Apply(v), nil
}

// Package engine implements the physically-simulated die core: face/value
// mapping, orientation resolution, settle detection and the roll lifecycle
// for single dice and dice sets.
package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Face is one of the six symbolic directions on a cube-shaped die.
type Face int

const (
	FaceForward Face = iota
	FaceUp
	FaceLeft
	FaceRight
	FaceDown
	FaceBack

	// FaceCount is the number of faces on a die.
	FaceCount = 6
)

func (f Face) String() string {
	switch f {
	case FaceForward:
		return "forward"
	case FaceUp:
		return "up"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceDown:
		return "down"
	case FaceBack:
		return "back"
	default:
		return "unknown"
	}
}

// worldUp is the fixed reference axis the winning face points along.
var worldUp = mgl64.Vec3{0, 1, 0}

// allFaces lists every face in declaration order. Iteration order doubles as
// the tie-break order in UpFace, so it must stay stable.
var allFaces = [FaceCount]Face{FaceForward, FaceUp, FaceLeft, FaceRight, FaceDown, FaceBack}

// localAxes holds each face's direction in the die's local frame:
// forward +Z, up +Y, right +X, with negations for the opposite faces.
var localAxes = [FaceCount]mgl64.Vec3{
	FaceForward: {0, 0, 1},
	FaceUp:      {0, 1, 0},
	FaceLeft:    {-1, 0, 0},
	FaceRight:   {1, 0, 0},
	FaceDown:    {0, -1, 0},
	FaceBack:    {0, 0, -1},
}

// canonicalRotations maps each face to the fixed rotation that points it
// along world up. Computed once; RotationFor never recomputes.
var canonicalRotations = [FaceCount]mgl64.Quat{
	FaceForward: mgl64.QuatRotate(-math.Pi/2, mgl64.Vec3{1, 0, 0}),
	FaceUp:      mgl64.QuatIdent(),
	FaceLeft:    mgl64.QuatRotate(-math.Pi/2, mgl64.Vec3{0, 0, 1}),
	FaceRight:   mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1}),
	FaceDown:    mgl64.QuatRotate(math.Pi, mgl64.Vec3{1, 0, 0}),
	FaceBack:    mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0}),
}

// RotationFor returns the canonical rotation that places f pointing up.
func RotationFor(f Face) mgl64.Quat {
	return canonicalRotations[f]
}

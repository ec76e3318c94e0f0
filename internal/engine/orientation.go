package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// UpFace resolves which face of a die with the given orientation points along
// world up, using the six-direction scan: rotate all six local face axes into
// world space and pick the one with the largest dot product against up.
// Ties are broken by face declaration order (first seen wins); the strict >
// comparison keeps that deterministic without an epsilon.
func UpFace(q mgl64.Quat) Face {
	q = q.Normalize()
	best := allFaces[0]
	bestDot := math.Inf(-1)
	for _, f := range allFaces {
		d := q.Rotate(localAxes[f]).Dot(worldUp)
		if d > bestDot {
			best = f
			bestDot = d
		}
	}
	return best
}

// upFaceSigned resolves the up face from only the three positive local axes:
// the axis whose world-space dot with up has the largest magnitude is the one
// most aligned with up, and its sign picks between the face and its opposite.
// Equivalent to UpFace for every orientation without an exact tie, at half
// the dot products.
func upFaceSigned(q mgl64.Quat) Face {
	q = q.Normalize()
	fwd := q.Rotate(localAxes[FaceForward]).Dot(worldUp)
	up := q.Rotate(localAxes[FaceUp]).Dot(worldUp)
	right := q.Rotate(localAxes[FaceRight]).Dot(worldUp)

	af, au, ar := math.Abs(fwd), math.Abs(up), math.Abs(right)
	switch {
	case af >= au && af >= ar:
		if fwd >= 0 {
			return FaceForward
		}
		return FaceBack
	case au >= ar:
		if up >= 0 {
			return FaceUp
		}
		return FaceDown
	default:
		if right >= 0 {
			return FaceRight
		}
		return FaceLeft
	}
}

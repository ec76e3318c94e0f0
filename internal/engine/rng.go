package engine

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// ImpulseRange describes the uniform ranges default roll impulses are drawn
// from when the caller does not supply explicit force/torque.
type ImpulseRange struct {
	MinForce  mgl64.Vec3
	MaxForce  mgl64.Vec3
	MinTorque mgl64.Vec3
	MaxTorque mgl64.Vec3
}

// DefaultImpulseRange gives a unit die a visible hop and a strong tumble.
func DefaultImpulseRange() ImpulseRange {
	return ImpulseRange{
		MinForce:  mgl64.Vec3{-2, 4, -2},
		MaxForce:  mgl64.Vec3{2, 7, 2},
		MinTorque: mgl64.Vec3{-10, -10, -10},
		MaxTorque: mgl64.Vec3{10, 10, 10},
	}
}

// Sample draws one force/torque pair, each component uniform in [min, max].
func (ir ImpulseRange) Sample(rng *rand.Rand) (force, torque mgl64.Vec3) {
	for i := 0; i < 3; i++ {
		force[i] = uniform(rng, ir.MinForce[i], ir.MaxForce[i])
		torque[i] = uniform(rng, ir.MinTorque[i], ir.MaxTorque[i])
	}
	return force, torque
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}

func newRNG() *rand.Rand { return rand.New(rand.NewSource(time.Now().UnixNano())) }

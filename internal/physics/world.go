// Package physics is a deliberately small rigid-body simulation: boxes under
// gravity above an infinite ground plane, with damping and sleep detection.
// It exists to give dice something real to tumble on in the demo server and
// integration tests; it is not a general collision engine.
package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Config tunes the world.
type Config struct {
	Gravity        mgl64.Vec3
	LinearDamping  float64 // per-step velocity retention, e.g. 0.99
	AngularDamping float64
	Restitution    float64 // bounce energy kept on ground contact
	GroundFriction float64 // tangential velocity bled per ground contact
	SleepThreshold float64 // max velocity magnitude to count as idle
	SleepTime      float64 // seconds of idling before a body sleeps
}

// DefaultConfig matches a unit die dropped from a short height at a 60Hz step.
func DefaultConfig() Config {
	return Config{
		Gravity:        mgl64.Vec3{0, -9.81, 0},
		LinearDamping:  0.99,
		AngularDamping: 0.98,
		Restitution:    0.3,
		GroundFriction: 0.2,
		SleepThreshold: 0.05,
		SleepTime:      0.5,
	}
}

// World steps a set of rigid boxes with a fixed timestep. Bodies do not
// collide with each other, only with the ground plane at y=0.
type World struct {
	cfg    Config
	bodies []*RigidBody
}

func NewWorld(cfg Config) *World {
	return &World{cfg: cfg}
}

// AddBox drops a new box body into the world at pos.
func (w *World) AddBox(pos mgl64.Vec3, halfExtent, mass float64) *RigidBody {
	b := &RigidBody{
		world:      w,
		pos:        pos,
		rot:        mgl64.QuatIdent(),
		mass:       mass,
		halfExtent: halfExtent,
	}
	w.bodies = append(w.bodies, b)
	return b
}

// Step advances every awake body by dt seconds. dt must be the fixed
// simulation step; callers are expected to drive this from a ticker, not the
// render loop.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		b.step(dt)
	}
}

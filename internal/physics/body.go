package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// RigidBody is one box in the world. It satisfies the engine's Body port.
type RigidBody struct {
	world      *World
	pos        mgl64.Vec3
	rot        mgl64.Quat
	vel        mgl64.Vec3
	angVel     mgl64.Vec3
	mass       float64
	halfExtent float64
	sleeping   bool
	idleTime   float64
}

// ApplyImpulse adds an instantaneous velocity change scaled by inverse mass
// and wakes the body.
func (b *RigidBody) ApplyImpulse(force mgl64.Vec3) {
	b.wake()
	if b.mass > 0 {
		b.vel = b.vel.Add(force.Mul(1 / b.mass))
	} else {
		b.vel = b.vel.Add(force)
	}
}

// ApplyAngularImpulse adds an instantaneous angular velocity change, scaled
// by the inverse inertia of a solid cube (I = mass*size^2/6).
func (b *RigidBody) ApplyAngularImpulse(torque mgl64.Vec3) {
	b.wake()
	inertia := b.inertia()
	if inertia > 0 {
		b.angVel = b.angVel.Add(torque.Mul(1 / inertia))
	} else {
		b.angVel = b.angVel.Add(torque)
	}
}

func (b *RigidBody) Sleeping() bool       { return b.sleeping }
func (b *RigidBody) Position() mgl64.Vec3 { return b.pos }
func (b *RigidBody) Rotation() mgl64.Quat { return b.rot }
func (b *RigidBody) Velocity() mgl64.Vec3 { return b.vel }

// SetRotation teleports the body to an orientation without disturbing its
// velocities or sleep state. Used for forcing a die to a face.
func (b *RigidBody) SetRotation(q mgl64.Quat) {
	b.rot = q.Normalize()
}

func (b *RigidBody) wake() {
	b.sleeping = false
	b.idleTime = 0
}

func (b *RigidBody) inertia() float64 {
	size := 2 * b.halfExtent
	return b.mass * size * size / 6
}

func (b *RigidBody) step(dt float64) {
	if b.sleeping {
		return
	}
	cfg := b.world.cfg

	b.vel = b.vel.Add(cfg.Gravity.Mul(dt))
	b.vel = b.vel.Mul(cfg.LinearDamping)
	b.angVel = b.angVel.Mul(cfg.AngularDamping)

	b.pos = b.pos.Add(b.vel.Mul(dt))

	if b.angVel.Len() > 0 {
		// q' = q + 0.5*dt*(0, w)*q, renormalized
		spin := mgl64.Quat{W: 0, V: b.angVel.Mul(0.5 * dt)}
		b.rot = b.rot.Add(spin.Mul(b.rot)).Normalize()
	}

	// Ground plane at y=0; rest height approximated by the half extent.
	rest := b.halfExtent
	if b.pos.Y() < rest {
		b.pos[1] = rest
		if b.vel.Y() < 0 {
			b.vel[1] = -b.vel.Y() * cfg.Restitution
		}
		// Kill tiny bounces so the body can come to rest.
		if b.vel.Y() < cfg.SleepThreshold {
			b.vel[1] = 0
		}
		keep := 1 - cfg.GroundFriction
		b.vel[0] *= keep
		b.vel[2] *= keep
		b.angVel = b.angVel.Mul(keep)
	}

	if b.vel.Len() < cfg.SleepThreshold && b.angVel.Len() < cfg.SleepThreshold {
		b.idleTime += dt
		if b.idleTime > cfg.SleepTime {
			b.sleeping = true
			b.vel = mgl64.Vec3{}
			b.angVel = mgl64.Vec3{}
		}
	} else {
		b.idleTime = 0
	}
}

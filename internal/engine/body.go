package engine

import "github.com/go-gl/mathgl/mgl64"

// Body is the minimal capability surface the die core needs from a physics
// engine. The core only writes impulses (and the teleport used by SetValue)
// and reads position/rotation/sleep state; integration, collision and
// deactivation heuristics belong to the implementation behind this interface.
// Tests drive dice with scripted fakes, the demo with internal/physics.
type Body interface {
	ApplyImpulse(force mgl64.Vec3)
	ApplyAngularImpulse(torque mgl64.Vec3)
	Sleeping() bool
	Position() mgl64.Vec3
	Rotation() mgl64.Quat
	SetRotation(q mgl64.Quat)
}

package engine

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrAlreadyRolling indicates a roll (or a value teleport) was requested on a
// die whose previous roll has not settled yet. The in-flight roll is
// unaffected; nothing is queued.
var ErrAlreadyRolling = errors.New("die is already rolling")

// RollState is the die's lifecycle state.
type RollState int

const (
	StateIdle RollState = iota
	StateRolling
)

func (s RollState) String() string {
	if s == StateRolling {
		return "rolling"
	}
	return "idle"
}

// Die owns one physical die's roll lifecycle. It reads orientation and sleep
// state from its Body, writes impulses when a roll starts, and decides via a
// per-roll settle detector when the roll is over. At most one roll is in
// flight at a time.
//
// A Die is not safe for concurrent use: all calls, including Step, belong on
// the single simulation goroutine that drives the fixed physics step.
type Die struct {
	body   Body
	table  *FaceValueTable
	settle SettleConfig

	state     RollState
	value     int
	detector  *settleDetector
	callbacks []func(value int)
}

// NewDie wires a die to its physics body and value table. The initial value
// is resolved from the body's orientation at rest.
func NewDie(body Body, table *FaceValueTable, settle SettleConfig) *Die {
	return &Die{
		body:   body,
		table:  table,
		settle: settle,
		value:  table.Value(UpFace(body.Rotation())),
	}
}

// Value returns the last resolved face value. Valid whenever the die is idle.
func (d *Die) Value() int { return d.value }

// IsRolling reports whether a roll is in flight.
func (d *Die) IsRolling() bool { return d.state == StateRolling }

// Table returns the die's face value table.
func (d *Die) Table() *FaceValueTable { return d.table }

// Roll applies the force and torque impulses to the body and starts tracking
// the motion. Each callback is invoked exactly once, in registration order,
// with the resolved value once the die settles; zero callbacks is
// fire-and-forget. Returns ErrAlreadyRolling while a roll is in flight.
func (d *Die) Roll(force, torque mgl64.Vec3, callbacks ...func(value int)) error {
	if d.state == StateRolling {
		return ErrAlreadyRolling
	}
	d.body.ApplyImpulse(force)
	d.body.ApplyAngularImpulse(torque)
	d.state = StateRolling
	d.detector = newSettleDetector(d.settle, d.body)
	d.callbacks = append(d.callbacks[:0], callbacks...)
	return nil
}

// RollResult is the future-style variant of Roll: the returned channel yields
// the resolved value exactly once, at the tick boundary on which the die
// settles. Built on the same settle path as the callback style.
func (d *Die) RollResult(force, torque mgl64.Vec3) (<-chan int, error) {
	result := make(chan int, 1)
	err := d.Roll(force, torque, func(value int) {
		result <- value
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SetValue teleports the die to the canonical rotation for the face mapped to
// value and updates Value synchronously. No impulses, no settle machinery.
// Idempotent. Rejected with ErrAlreadyRolling mid-roll and ErrValueNotMapped
// for values outside the table.
func (d *Die) SetValue(value int) error {
	if d.state == StateRolling {
		return ErrAlreadyRolling
	}
	face, err := d.table.Face(value)
	if err != nil {
		return err
	}
	d.body.SetRotation(RotationFor(face))
	d.value = value
	return nil
}

// Step feeds one fixed physics step to the in-flight roll, if any. On the
// settle transition the die goes idle first, then the value is resolved from
// the final orientation, then callbacks fire in registration order, then the
// detector is discarded. A no-op while idle.
func (d *Die) Step() {
	if d.state != StateRolling {
		return
	}
	if !d.detector.observe(d.body) {
		return
	}
	d.state = StateIdle
	d.value = d.table.Value(UpFace(d.body.Rotation()))
	for _, cb := range d.callbacks {
		cb(d.value)
	}
	d.callbacks = nil
	d.detector = nil
}

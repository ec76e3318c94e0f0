package engine

import (
	"errors"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrIndexOutOfRange indicates a die index outside the set.
var ErrIndexOutOfRange = errors.New("die index out of range")

// ErrLengthMismatch indicates SetValues was given the wrong number of values.
var ErrLengthMismatch = errors.New("value count does not match die count")

// ErrNoDice indicates a collection roll on an empty set.
var ErrNoDice = errors.New("roller holds no dice")

// ErrRollPending indicates structural mutation was attempted while a roll or
// a collection barrier is still pending.
var ErrRollPending = errors.New("roll still pending")

// Roller manages an ordered set of dice: it rolls them individually or all at
// once, caches each die's last value as it settles, and joins collection
// rolls so the aggregate notifier fires only after the last straggler.
//
// Dice are addressed by insertion index. Like Die, a Roller must be driven
// from the single simulation goroutine.
type Roller struct {
	dice   []*Die
	values []int
	rng    *rand.Rand
	ranges ImpulseRange

	// collection barrier state, held between RollAll and its resolution
	allCallbacks []func(values []int)
	allPending   bool
}

// NewRoller creates an empty roller drawing default impulses from ranges,
// seeded from the clock.
func NewRoller(ranges ImpulseRange) *Roller {
	return NewRollerSeeded(ranges, 0)
}

// NewRollerSeeded is NewRoller with a deterministic impulse seed; seed 0
// falls back to the clock.
func NewRollerSeeded(ranges ImpulseRange, seed int64) *Roller {
	rng := newRNG()
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	return &Roller{rng: rng, ranges: ranges}
}

// Len returns the number of dice in the set.
func (r *Roller) Len() int { return len(r.dice) }

// Die returns the die at index i.
func (r *Roller) Die(i int) (*Die, error) {
	if i < 0 || i >= len(r.dice) {
		return nil, ErrIndexOutOfRange
	}
	return r.dice[i], nil
}

// AddDie appends a die to the set. Rejected while any roll is pending so
// indices stay stable for in-flight completions.
func (r *Roller) AddDie(d *Die) error {
	if r.busy() {
		return ErrRollPending
	}
	r.dice = append(r.dice, d)
	r.values = append(r.values, d.Value())
	return nil
}

// RemoveDie removes the die at index i, shifting later dice down. Rejected
// while any roll is pending.
func (r *Roller) RemoveDie(i int) error {
	if i < 0 || i >= len(r.dice) {
		return ErrIndexOutOfRange
	}
	if r.busy() {
		return ErrRollPending
	}
	r.dice = append(r.dice[:i], r.dice[i+1:]...)
	r.values = append(r.values[:i], r.values[i+1:]...)
	return nil
}

// Values returns a copy of the cached last-known value per die, in set order.
func (r *Roller) Values() []int {
	out := make([]int, len(r.values))
	copy(out, r.values)
	return out
}

// Sum returns the sum of the cached values. It never re-reads orientations;
// the cache is updated on every individual settle.
func (r *Roller) Sum() int {
	total := 0
	for _, v := range r.values {
		total += v
	}
	return total
}

// IsRolling reports whether any die in the set is mid-roll or a collection
// barrier is pending.
func (r *Roller) IsRolling() bool { return r.busy() }

// RollOne rolls the die at index i with impulses sampled from the configured
// ranges. Callbacks fire once each, in order, when that die settles.
func (r *Roller) RollOne(i int, callbacks ...func(value int)) error {
	force, torque := r.ranges.Sample(r.rng)
	return r.RollOneImpulse(i, force, torque, callbacks...)
}

// RollOneImpulse rolls the die at index i with explicit impulses. The
// roller's value cache for slot i updates when the die settles, before the
// caller's callbacks run.
func (r *Roller) RollOneImpulse(i int, force, torque mgl64.Vec3, callbacks ...func(value int)) error {
	if i < 0 || i >= len(r.dice) {
		return ErrIndexOutOfRange
	}
	cache := func(value int) { r.values[i] = value }
	return r.dice[i].Roll(force, torque, append([]func(int){cache}, callbacks...)...)
}

// RollAll rolls every die in the set with independently sampled impulses.
// Each die settles on its own schedule; callbacks registered here fire
// exactly once, at a tick boundary strictly after the last die settles, with
// the full ordered values array. Requires every die idle (ErrAlreadyRolling
// otherwise) and at least one die (ErrNoDice).
func (r *Roller) RollAll(callbacks ...func(values []int)) error {
	if len(r.dice) == 0 {
		return ErrNoDice
	}
	if r.busy() {
		return ErrAlreadyRolling
	}
	for i := range r.dice {
		if err := r.RollOne(i); err != nil {
			// Unreachable: index valid, all dice idle.
			return err
		}
	}
	r.allCallbacks = append(r.allCallbacks[:0], callbacks...)
	r.allPending = true
	return nil
}

// RollAllResult is the future-style variant of RollAll.
func (r *Roller) RollAllResult() (<-chan []int, error) {
	result := make(chan []int, 1)
	err := r.RollAll(func(values []int) {
		result <- values
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SetValues teleports every die to the canonical orientation for the value at
// its position. Validated up front: no partial application on length
// mismatch, unknown values or mid-roll dice.
func (r *Roller) SetValues(values []int) error {
	if len(values) != len(r.dice) {
		return ErrLengthMismatch
	}
	if r.busy() {
		return ErrAlreadyRolling
	}
	// validate against each die's own table before touching any of them
	for i, v := range values {
		if _, err := r.dice[i].Table().Face(v); err != nil {
			return err
		}
	}
	for i, v := range values {
		if err := r.dice[i].SetValue(v); err != nil {
			return err
		}
		r.values[i] = v
	}
	return nil
}

// SetDieValue teleports the die at index i to value.
func (r *Roller) SetDieValue(i, value int) error {
	if i < 0 || i >= len(r.dice) {
		return ErrIndexOutOfRange
	}
	if err := r.dice[i].SetValue(value); err != nil {
		return err
	}
	r.values[i] = value
	return nil
}

// Step advances every die one fixed physics step, then resolves a pending
// collection barrier once all dice are idle. The single per-tick poll here is
// the only join point; aggregate callbacks never fire mid-tick.
func (r *Roller) Step() {
	for _, d := range r.dice {
		d.Step()
	}
	if !r.allPending {
		return
	}
	for _, d := range r.dice {
		if d.IsRolling() {
			return
		}
	}
	r.allPending = false
	values := r.Values()
	for _, cb := range r.allCallbacks {
		cb(values)
	}
	r.allCallbacks = nil
}

func (r *Roller) busy() bool {
	if r.allPending {
		return true
	}
	for _, d := range r.dice {
		if d.IsRolling() {
			return true
		}
	}
	return false
}

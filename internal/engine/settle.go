package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SettlePolicy selects how the end of a roll is detected.
type SettlePolicy int

const (
	// SettleBySleep trusts the physics engine: the roll is over on the first
	// tick the body reports itself sleeping. Cheap, but hostage to the
	// engine's deactivation heuristics (a light impulse may never sleep).
	SettleBySleep SettlePolicy = iota
	// SettleByDelta compares position and rotation against the previous
	// tick's sample and settles when both stop changing. Engine-agnostic and
	// tunable, at the cost of one tick of lag and two comparisons per tick.
	SettleByDelta
)

// SettleConfig tunes settle detection. Thresholds only apply to SettleByDelta.
type SettleConfig struct {
	Policy SettlePolicy
	// LinearThreshold is the max distance the body may travel between two
	// successive fixed steps and still count as resting.
	LinearThreshold float64
	// AngularThreshold is the min absolute dot product between successive
	// orientation quaternions; 1 means identical.
	AngularThreshold float64
}

// DefaultSettleConfig returns delta detection with thresholds tuned for a
// unit-sized die on a 60Hz fixed step.
func DefaultSettleConfig() SettleConfig {
	return SettleConfig{
		Policy:           SettleByDelta,
		LinearThreshold:  0.001,
		AngularThreshold: 0.99999,
	}
}

// settleDetector is the per-roll Moving->Settled state machine. One is armed
// when a roll starts and thrown away when it settles; it never transitions
// back. Samples must be taken on the fixed physics step, not the render
// step, so thresholds mean the same thing at any frame rate.
type settleDetector struct {
	cfg     SettleConfig
	lastPos mgl64.Vec3
	lastRot mgl64.Quat
	settled bool
}

func newSettleDetector(cfg SettleConfig, body Body) *settleDetector {
	d := &settleDetector{cfg: cfg}
	d.sample(body)
	return d
}

// observe feeds one fixed-step tick of physics feedback. It returns true on
// the single Moving->Settled transition and false forever after.
func (d *settleDetector) observe(body Body) bool {
	if d.settled {
		return false
	}
	switch d.cfg.Policy {
	case SettleBySleep:
		if body.Sleeping() {
			d.settled = true
			return true
		}
	case SettleByDelta:
		pos := body.Position()
		rot := body.Rotation().Normalize()
		dist := pos.Sub(d.lastPos).Len()
		// |q1.q2| is rotation similarity; the abs folds the double cover.
		similarity := math.Abs(rot.Dot(d.lastRot))
		if dist < d.cfg.LinearThreshold && similarity >= d.cfg.AngularThreshold {
			d.settled = true
			return true
		}
		d.lastPos, d.lastRot = pos, rot
	}
	return false
}

func (d *settleDetector) sample(body Body) {
	d.lastPos = body.Position()
	d.lastRot = body.Rotation().Normalize()
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSleepPolicySettlesOnFirstSleepingTick(t *testing.T) {
	body := newFakeBody()
	d := newSettleDetector(SettleConfig{Policy: SettleBySleep}, body)

	for tick := 0; tick < 4; tick++ {
		assert.False(t, d.observe(body), "tick %d", tick)
	}
	body.sleeping = true
	assert.True(t, d.observe(body))
	// the transition fires once; afterwards the detector stays settled
	assert.False(t, d.observe(body))
}

func TestDeltaPolicyRequiresBothThresholds(t *testing.T) {
	body := newFakeBody()
	d := newSettleDetector(DefaultSettleConfig(), body)

	// ticks 1-4: still translating and tumbling
	for tick := 1; tick <= 4; tick++ {
		body.nudge()
		body.twist()
		require.False(t, d.observe(body), "tick %d", tick)
	}
	// ticks 5-6: position has stopped but rotation still clears the
	// threshold, so the AND must hold the detector in Moving
	for tick := 5; tick <= 6; tick++ {
		body.twist()
		require.False(t, d.observe(body), "tick %d", tick)
	}
	// tick 7: rotation quiet too
	assert.True(t, d.observe(body), "tick 7")
}

func TestDeltaPolicyRebaselinesWhileMoving(t *testing.T) {
	body := newFakeBody()
	d := newSettleDetector(DefaultSettleConfig(), body)

	// drift by a large step each tick: if the baseline were not re-sampled,
	// the growing distance from the start pose could never settle
	for tick := 0; tick < 10; tick++ {
		body.nudge()
		require.False(t, d.observe(body))
	}
	assert.True(t, d.observe(body), "stationary tick after drift")
}

func TestDeltaPolicyIgnoresQuaternionDoubleCover(t *testing.T) {
	body := newFakeBody()
	d := newSettleDetector(DefaultSettleConfig(), body)

	// -q is the same physical orientation as q; similarity must treat a
	// sign flip from the engine as no rotation at all
	body.rot = body.rot.Scale(-1)
	assert.True(t, d.observe(body))
}

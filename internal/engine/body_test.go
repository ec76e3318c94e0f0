package engine

import "github.com/go-gl/mathgl/mgl64"

// fakeBody is a scripted physics body: tests mutate its fields between steps
// to replay whatever motion trace they need.
type fakeBody struct {
	pos      mgl64.Vec3
	rot      mgl64.Quat
	sleeping bool

	impulses    []mgl64.Vec3
	angImpulses []mgl64.Vec3
}

func newFakeBody() *fakeBody {
	return &fakeBody{rot: mgl64.QuatIdent()}
}

func (b *fakeBody) ApplyImpulse(force mgl64.Vec3) { b.impulses = append(b.impulses, force) }
func (b *fakeBody) Sleeping() bool                { return b.sleeping }
func (b *fakeBody) Position() mgl64.Vec3          { return b.pos }
func (b *fakeBody) Rotation() mgl64.Quat          { return b.rot }
func (b *fakeBody) SetRotation(q mgl64.Quat)      { b.rot = q }

func (b *fakeBody) ApplyAngularImpulse(torque mgl64.Vec3) {
	b.angImpulses = append(b.angImpulses, torque)
}

// nudge moves the body far enough that a delta detector keeps it Moving.
func (b *fakeBody) nudge() {
	b.pos = b.pos.Add(mgl64.Vec3{0.1, 0, 0})
}

// twist rotates the body far enough that a delta detector keeps it Moving.
func (b *fakeBody) twist() {
	b.rot = mgl64.QuatRotate(0.2, mgl64.Vec3{0, 1, 0}).Mul(b.rot)
}

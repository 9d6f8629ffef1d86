package eyes

import (
	"math/rand"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestConfusedOneShot(t *testing.T) {
	c := qt.New(t)
	e, _ := newTestEyes()
	now := step(t, e, 0, 10)
	e.AnimConfused()

	activeSince := int64(-1)
	activeUntil := int64(-1)
	for i := 0; i < 700; i++ {
		now = step(t, e, now, 1)
		if e.hFlicker {
			if activeSince < 0 {
				activeSince = now
			}
			activeUntil = now
		}
	}

	c.Assert(activeSince, qt.Equals, int64(11))
	c.Assert(activeUntil, qt.Equals, int64(11+confusedDuration-1))
	c.Assert(e.confused, qt.IsFalse)
	c.Assert(e.hFlicker, qt.IsFalse)
	// Amplitude was forced by the burst.
	c.Assert(e.hFlickerAmp, qt.Equals, confusedAmplitude)
}

func TestLaughOneShot(t *testing.T) {
	c := qt.New(t)
	e, _ := newTestEyes()
	now := step(t, e, 0, 10)

	e.AnimLaugh()
	now = step(t, e, now, 1)
	c.Assert(e.vFlicker, qt.IsTrue)
	c.Assert(e.vFlickerAmp, qt.Equals, laughAmplitude)

	step(t, e, now, laughDuration+5)
	c.Assert(e.vFlicker, qt.IsFalse)
	c.Assert(e.laugh, qt.IsFalse)
}

func TestIdleTargetsStayInBounds(t *testing.T) {
	c := qt.New(t)
	e, _ := newTestEyes()
	e.rng = rand.New(rand.NewSource(7))
	e.SetIdleMode(true, 1, 3)

	maxX, maxY := e.maxX(), e.maxY()
	now := int64(0)
	moved := false
	for i := 0; i < 200; i++ {
		// Always past the jittered deadline, so every frame repositions.
		now += 5000
		c.Assert(e.Update(now), qt.IsNil)

		x, y := e.left.xNext, e.left.yNext
		c.Assert(x >= 0 && x <= maxX, qt.IsTrue,
			qt.Commentf("idle x target %d outside [0,%d]", x, maxX))
		c.Assert(y >= 0 && y <= maxY, qt.IsTrue,
			qt.Commentf("idle y target %d outside [0,%d]", y, maxY))
		if x != 0 || y != 0 {
			moved = true
		}
	}
	c.Assert(moved, qt.IsTrue)
}

func TestAutoblinkFiresAndReschedules(t *testing.T) {
	c := qt.New(t)
	e, _ := newTestEyes()
	now := step(t, e, 0, 10) // settle open

	e.SetAutoblinker(true, 1, 0) // no jitter
	now = step(t, e, now, 1)
	c.Assert(e.blinkAt, qt.Equals, now+1000)
	c.Assert(e.left.open, qt.IsTrue)

	// The fired blink closes the eyes over the next frames.
	minH := e.left.height
	for i := 0; i < 8; i++ {
		now = step(t, e, now, 1)
		minH = min(minH, e.left.height)
	}
	c.Assert(minH <= 2, qt.IsTrue, qt.Commentf("min height %d", minH))
}

func TestFlickerAlternatesEveryFrame(t *testing.T) {
	c := qt.New(t)
	e, _ := newTestEyes()
	now := step(t, e, 0, 10)

	e.SetHFlicker(true, 10)
	phase := e.hFlickerAlt
	for i := 0; i < 6; i++ {
		now = step(t, e, now, 1)
		c.Assert(e.hFlickerAlt, qt.Equals, !phase)
		phase = e.hFlickerAlt
	}

	// Disabling freezes the phase.
	e.SetHFlicker(false, 0)
	step(t, e, now, 3)
	c.Assert(e.hFlickerAlt, qt.Equals, phase)
	c.Assert(e.hFlickerAmp, qt.Equals, 10)
}

func TestDeadlineJitterRange(t *testing.T) {
	c := qt.New(t)
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		d := deadline(500, 1, 4, r)
		c.Assert(d >= 1500 && d <= 4500, qt.IsTrue, qt.Commentf("deadline %d", d))
	}
	c.Assert(deadline(500, 2, 0, r), qt.Equals, int64(2500))
}

func TestCuriousRaisesOutwardEye(t *testing.T) {
	c := qt.New(t)
	e, _ := newTestEyes()
	e.SetCuriosity(true)

	e.SetPosition(PositionW) // left eye to its outward limit
	step(t, e, 0, 1)
	c.Assert(e.left.heightOffset, qt.Equals, curiousOffset)
	c.Assert(e.right.heightOffset, qt.Equals, 0)

	e.SetPosition(PositionCenter)
	step(t, e, 100, 1)
	c.Assert(e.left.heightOffset, qt.Equals, 0)
}

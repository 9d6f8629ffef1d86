package eyes

import "math/rand"

// stepMacros advances every time-gated behavior against the frame clock.
// Behaviors are independent; they only communicate by rewriting targets and
// current values, and setter calls they make (autoblink firing Blink) take
// effect in this same frame.
func (e *Eyes) stepMacros(now int64) {
	if e.autoblinker && now >= e.blinkAt {
		e.Blink()
		e.blinkAt = deadline(now, e.blinkInterval, e.blinkVariation, e.rng)
	}

	// One-shot laugh: a short vertical shake.
	if e.laugh {
		if e.laughToggle {
			e.SetVFlicker(true, laughAmplitude)
			e.laughAt = now
			e.laughToggle = false
		} else if now >= e.laughAt+laughDuration {
			e.SetVFlicker(false, 0)
			e.laughToggle = true
			e.laugh = false
		}
	}

	// One-shot confused: a short horizontal shake.
	if e.confused {
		if e.confusedToggle {
			e.SetHFlicker(true, confusedAmplitude)
			e.confusedAt = now
			e.confusedToggle = false
		} else if now >= e.confusedAt+confusedDuration {
			e.SetHFlicker(false, 0)
			e.confusedToggle = true
			e.confused = false
		}
	}

	if e.idle && now >= e.idleAt {
		e.repositionIdle()
		e.idleAt = deadline(now, e.idleInterval, e.idleVariation, e.rng)
	}

	e.stepFlicker()
}

// deadline schedules the next firing of a jittered periodic behavior:
// now + base seconds plus a uniform random extra below variation seconds.
func deadline(now int64, baseSec, variationSec int, r *rand.Rand) int64 {
	d := now + int64(baseSec)*1000
	if variationSec > 0 {
		d += int64(r.Intn(variationSec)) * 1000
	}
	return d
}

// repositionIdle aims the eyes at a fresh random position inside the travel
// limits and squashes them along the dominant travel axis.
func (e *Eyes) repositionIdle() {
	prevX := e.left.xNext
	prevY := e.left.yNext

	maxX := max(e.maxX(), 0)
	maxY := max(e.maxY(), 0)
	e.left.xNext = e.rng.Intn(maxX + 1)
	e.left.yNext = e.rng.Intn(maxY + 1)

	dx := abs(e.left.xNext - prevX)
	dy := abs(e.left.yNext - prevY)
	switch {
	case dx > dy && dx > 2: // mostly horizontal travel
		e.squashTravel(dx/20, -(dx / 40))
	case dy > dx && dy > 2: // mostly vertical travel
		e.squashTravel(-(dy / 40), dy/20)
	default: // small or diagonal, ease back to the default size
		e.squashTravel(0, 0)
	}
}

// squashTravel blends both eyes toward their default size plus the given
// deltas. In cyclops mode the right eye is left alone.
func (e *Eyes) squashTravel(wDelta, hDelta int) {
	e.left.width = tween(e.left.width, e.left.widthDefault+wDelta)
	e.left.height = tween(e.left.height, e.left.heightDefault+hDelta)
	if !e.cyclops {
		e.right.width = tween(e.right.width, e.right.widthDefault+wDelta)
		e.right.height = tween(e.right.height, e.right.heightDefault+hDelta)
	}
}

// stepFlicker applies the alternating shake offsets on top of the smoothed
// positions, with a size compensation so the displacement reads as a shake
// rather than a translate. The phase toggles every rendered frame while a
// flicker is active, whatever its amplitude.
func (e *Eyes) stepFlicker() {
	if e.hFlicker {
		off := e.hFlickerAmp
		if !e.hFlickerAlt {
			off = -off
		}
		e.left.x += off
		e.right.x += off
		e.squashTravel(-e.hFlickerAmp, e.hFlickerAmp/2)
		e.hFlickerAlt = !e.hFlickerAlt
	}
	if e.vFlicker {
		off := e.vFlickerAmp
		if !e.vFlickerAlt {
			off = -off
		}
		e.left.y += off
		e.right.y += off
		e.squashTravel(-e.vFlickerAmp/2, e.vFlickerAmp)
		e.vFlickerAlt = !e.vFlickerAlt
	}
}

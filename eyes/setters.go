package eyes

import "image/color"

// SetFramerate caps rendering at fps frames per second. Non-positive rates
// fall back to the default.
func (e *Eyes) SetFramerate(fps int) {
	if fps <= 0 {
		fps = defaultFrameRate
	}
	e.frameInterval = int64(1000 / fps)
}

// SetColors sets the foreground (eye) and background (overlay) colors.
func (e *Eyes) SetColors(on, off color.RGBA) {
	e.on = on
	e.off = off
}

// SetWidth sets each eye's default width. Takes effect over the following
// frames, never instantly.
func (e *Eyes) SetWidth(left, right int) {
	e.left.widthNext = max(left, 0)
	e.left.widthDefault = e.left.widthNext
	e.right.widthNext = max(right, 0)
	e.right.widthDefault = e.right.widthNext
}

// SetHeight sets each eye's default height.
func (e *Eyes) SetHeight(left, right int) {
	e.left.heightNext = max(left, 0)
	e.left.heightDefault = e.left.heightNext
	e.right.heightNext = max(right, 0)
	e.right.heightDefault = e.right.heightNext
}

// SetBorderRadius sets each eye's corner radius.
func (e *Eyes) SetBorderRadius(left, right int) {
	e.left.radiusNext = max(left, 0)
	e.left.radiusDefault = e.left.radiusNext
	e.right.radiusNext = max(right, 0)
	e.right.radiusDefault = e.right.radiusNext
}

// SetSpaceBetween sets the gap between the eyes in pixels. Negative values
// are allowed and make the eyes overlap.
func (e *Eyes) SetSpaceBetween(px int) {
	e.spaceNext = px
	e.spaceDefault = px
}

// SetMood selects the eyelid expression. Unknown values reset to neutral.
func (e *Eyes) SetMood(m Mood) {
	switch m {
	case MoodTired:
		e.tired, e.angry, e.happy = true, false, false
	case MoodAngry:
		e.tired, e.angry, e.happy = false, true, false
	case MoodHappy:
		e.tired, e.angry, e.happy = false, false, true
	default:
		e.tired, e.angry, e.happy = false, false, false
	}
}

// SetPosition aims the eyes at one of the predefined directions. Unknown
// values aim at the center.
func (e *Eyes) SetPosition(p Position) {
	maxX, maxY := e.maxX(), e.maxY()
	switch p {
	case PositionN:
		e.left.xNext, e.left.yNext = maxX/4, 0
	case PositionNE:
		e.left.xNext, e.left.yNext = maxX/2, 0
	case PositionE:
		e.left.xNext, e.left.yNext = maxX/2, maxY/4
	case PositionSE:
		e.left.xNext, e.left.yNext = maxX/2, maxY/2
	case PositionS:
		e.left.xNext, e.left.yNext = maxX/4, maxY/2
	case PositionSW:
		e.left.xNext, e.left.yNext = 0, maxY/2
	case PositionW:
		e.left.xNext, e.left.yNext = 0, maxY/4
	case PositionNW:
		e.left.xNext, e.left.yNext = 0, 0
	default:
		e.left.xNext, e.left.yNext = maxX/4, maxY/4
	}
}

// SetAutoblinker toggles automatic blinking. intervalSec is the base pause
// between blinks and variationSec a random extra, both in whole seconds; a
// non-positive interval keeps the previous timing.
func (e *Eyes) SetAutoblinker(active bool, intervalSec, variationSec int) {
	e.autoblinker = active
	if intervalSec > 0 {
		e.blinkInterval = intervalSec
		e.blinkVariation = max(variationSec, 0)
	}
}

// SetIdleMode toggles idle look-around: the eyes wander to random positions
// on a jittered interval. Timing arguments behave as in SetAutoblinker.
func (e *Eyes) SetIdleMode(active bool, intervalSec, variationSec int) {
	e.idle = active
	if intervalSec > 0 {
		e.idleInterval = intervalSec
		e.idleVariation = max(variationSec, 0)
	}
}

// SetCuriosity toggles curious mode: the outer eye grows when looking far
// left or right.
func (e *Eyes) SetCuriosity(curious bool) {
	e.curious = curious
}

// SetCyclops toggles single-eye rendering. While enabled the right eye and
// the space between contribute nothing to the frame.
func (e *Eyes) SetCyclops(cyclops bool) {
	e.cyclops = cyclops
}

// SetHFlicker toggles the horizontal shake. A non-positive amplitude keeps
// the previous one.
func (e *Eyes) SetHFlicker(active bool, amplitude int) {
	e.hFlicker = active
	if amplitude > 0 {
		e.hFlickerAmp = amplitude
	}
}

// SetVFlicker toggles the vertical shake.
func (e *Eyes) SetVFlicker(active bool, amplitude int) {
	e.vFlicker = active
	if amplitude > 0 {
		e.vFlickerAmp = amplitude
	}
}

// Close closes both eyes.
func (e *Eyes) Close() {
	e.CloseEyes(true, true)
}

// Open opens both eyes.
func (e *Eyes) Open() {
	e.OpenEyes(true, true)
}

// Blink blinks both eyes once.
func (e *Eyes) Blink() {
	e.Close()
	e.Open()
}

// CloseEyes closes the selected eyes.
func (e *Eyes) CloseEyes(left, right bool) {
	if left {
		e.left.heightNext = 1
		e.left.open = false
	}
	if right {
		e.right.heightNext = 1
		e.right.open = false
	}
}

// OpenEyes opens the selected eyes. An eye closed in the same tick still
// renders at least one fully closed frame before reopening.
func (e *Eyes) OpenEyes(left, right bool) {
	if left {
		e.left.open = true
	}
	if right {
		e.right.open = true
	}
}

// BlinkEyes blinks the selected eyes once.
func (e *Eyes) BlinkEyes(left, right bool) {
	e.CloseEyes(left, right)
	e.OpenEyes(left, right)
}

// AnimConfused plays a one-shot horizontal shake.
func (e *Eyes) AnimConfused() {
	e.confused = true
}

// AnimLaugh plays a one-shot vertical shake.
func (e *Eyes) AnimLaugh() {
	e.laugh = true
}

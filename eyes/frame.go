package eyes

// drawFrame runs one full advance+render pass: geometry smoothing, macro
// animation updates, dependent geometry, then the draw calls. The step order
// is fixed; macro steps rewrite targets that the next frame's smoothing picks
// up, and flicker offsets land on already-smoothed positions.
func (e *Eyes) drawFrame(now int64) error {
	e.stepCurious()

	e.left.easeHeight()
	e.right.easeHeight()
	e.left.reopen()
	e.right.reopen()

	e.stepBlinkSquash()
	e.stepCuriousSquash()

	e.space = tween(e.space, e.spaceNext)

	e.left.easePosition()
	// The right eye trails the left: its target is derived from the left
	// eye's target plus the current width and spacing.
	e.right.xNext = e.left.xNext + e.left.width + e.space
	e.right.yNext = e.left.yNext
	e.right.easePosition()

	e.left.radius = tween(e.left.radius, e.left.radiusNext)
	e.right.radius = tween(e.right.radius, e.right.radiusNext)

	e.stepMacros(now)

	// Re-center squashed eyes so size changes read as scaling about the
	// middle rather than the top-left corner.
	e.left.x += (e.left.widthDefault - e.left.width) / 2
	e.left.y += (e.left.heightDefault - e.left.height) / 2
	if !e.cyclops {
		e.right.x += (e.right.widthDefault - e.right.width) / 2
		e.right.y += (e.right.heightDefault - e.right.height) / 2
	}

	if e.cyclops {
		e.right.width = 0
		e.right.height = 0
		e.space = 0
	}

	e.clampSizes()

	return e.render()
}

func (y *eye) easeHeight() {
	y.height = (y.height + y.heightNext + y.heightOffset) / 2
}

// reopen restores the default height target once a closing eye has been seen
// fully shut, so a blink always shows its closed frame.
func (y *eye) reopen() {
	if y.open && y.height <= 1+y.heightOffset {
		y.heightNext = y.heightDefault
	}
}

func (y *eye) easePosition() {
	y.x = tween(y.x, y.xNext)
	y.y = tween(y.y, y.yNext)
}

// easeWidthBlink stretches the eye horizontally while it squashes shut, and
// narrows it slightly while it stretches back open.
func (y *eye) easeWidthBlink() {
	switch {
	case y.heightNext == 1:
		y.width = tween(y.width, y.widthDefault+(y.heightDefault-y.height)/4)
	case y.height < y.heightDefault && y.heightNext == y.heightDefault:
		y.width = tween(y.width, y.widthDefault-(y.heightDefault-y.height)/8)
	default:
		y.width = tween(y.width, y.widthNext)
	}
}

func (e *Eyes) stepBlinkSquash() {
	e.left.easeWidthBlink()
	if e.cyclops {
		e.right.width = 0
		return
	}
	e.right.easeWidthBlink()
}

// lookingLeft reports whether the left eye is aimed at its far left.
func (e *Eyes) lookingLeft() bool {
	return e.left.xNext <= curiousEdge && e.left.xNext < e.maxX()/2
}

// lookingRight reports whether the gaze is aimed at the far right: the right
// eye near the screen edge, or in cyclops mode the single eye near its own
// travel limit.
func (e *Eyes) lookingRight() bool {
	if e.cyclops {
		return e.left.xNext >= e.maxX()-curiousEdge && e.left.xNext > e.maxX()/2
	}
	return e.right.xNext >= e.screenWidth-e.right.widthDefault-curiousEdge &&
		e.right.xNext > e.screenWidth/2
}

// stepCurious raises the outward eye's height offset while looking sideways.
func (e *Eyes) stepCurious() {
	if !e.curious {
		e.left.heightOffset = 0
		e.right.heightOffset = 0
		return
	}
	if e.lookingLeft() || (e.cyclops && e.lookingRight()) {
		e.left.heightOffset = curiousOffset
	} else {
		e.left.heightOffset = 0
	}
	if !e.cyclops && e.lookingRight() {
		e.right.heightOffset = curiousOffset
	} else {
		e.right.heightOffset = 0
	}
}

// stepCuriousSquash compensates the curious height offset: the taller outward
// eye narrows while the other eye widens to keep the pair balanced.
func (e *Eyes) stepCuriousSquash() {
	if !e.curious {
		e.left.width = tween(e.left.width, e.left.widthNext)
		e.right.width = tween(e.right.width, e.right.widthNext)
		return
	}
	switch {
	case e.lookingLeft():
		e.left.width = tween(e.left.width, e.left.widthDefault-e.left.heightOffset/2)
		if !e.cyclops {
			e.right.width = tween(e.right.width, e.right.widthDefault+e.left.heightOffset/2)
		}
	case !e.cyclops && e.lookingRight():
		e.right.width = tween(e.right.width, e.right.widthDefault-e.right.heightOffset/2)
		e.left.width = tween(e.left.width, e.left.widthDefault+e.right.heightOffset/2)
	case e.cyclops && e.lookingRight():
		e.left.width = tween(e.left.width, e.left.widthDefault-e.left.heightOffset/2)
	default:
		e.left.width = tween(e.left.width, e.left.widthNext)
		e.right.width = tween(e.right.width, e.right.widthNext)
	}
}

// clampSizes keeps rendered dimensions non-negative no matter what the
// animation steps produced.
func (e *Eyes) clampSizes() {
	e.left.width = max(e.left.width, 0)
	e.left.height = max(e.left.height, 0)
	e.right.width = max(e.right.width, 0)
	e.right.height = max(e.right.height, 0)
}

// render emits the current frame: eye bodies first, then the mood overlays,
// then present.
func (e *Eyes) render() error {
	e.surface.Clear()

	e.fillEye(&e.left)
	if !e.cyclops {
		e.fillEye(&e.right)
	}

	e.stepMoodTargets()
	e.drawTiredLids()
	e.drawAngryLids()
	e.drawHappyLids()

	return e.surface.Present()
}

func (e *Eyes) fillEye(y *eye) {
	e.surface.FillRoundRect(y.x, y.y, y.width, y.height, y.radius, e.on)
}

// stepMoodTargets derives the eyelid targets from the mood flags and the
// current eye height, so mood transitions animate over several frames.
func (e *Eyes) stepMoodTargets() {
	if e.tired {
		e.tiredLidNext = e.left.height / 2
		e.angryLidNext = 0
	} else {
		e.tiredLidNext = 0
	}
	if e.angry {
		e.angryLidNext = e.left.height / 2
		e.tiredLidNext = 0
	} else {
		e.angryLidNext = 0
	}
	if e.happy {
		e.happyLidNext = e.left.height / 2
	} else {
		e.happyLidNext = 0
	}
}

// drawTiredLids erases droopy top lids: the slant falls toward the outside
// of each eye. Cyclops mode slants both halves of the single eye.
func (e *Eyes) drawTiredLids() {
	e.tiredLid = tween(e.tiredLid, e.tiredLidNext)
	l, r := &e.left, &e.right
	if e.cyclops {
		half := l.width / 2
		e.surface.FillTriangle(l.x, l.y-1, l.x+half, l.y-1, l.x, l.y+e.tiredLid-1, e.off)
		e.surface.FillTriangle(l.x+half, l.y-1, l.x+l.width, l.y-1, l.x+l.width, l.y+e.tiredLid-1, e.off)
		return
	}
	e.surface.FillTriangle(l.x, l.y-1, l.x+l.width, l.y-1, l.x, l.y+e.tiredLid-1, e.off)
	e.surface.FillTriangle(r.x, r.y-1, r.x+r.width, r.y-1, r.x+r.width, r.y+e.tiredLid-1, e.off)
}

// drawAngryLids mirrors the tired lids: the slant falls toward the inside.
func (e *Eyes) drawAngryLids() {
	e.angryLid = tween(e.angryLid, e.angryLidNext)
	l, r := &e.left, &e.right
	if e.cyclops {
		half := l.width / 2
		e.surface.FillTriangle(l.x, l.y-1, l.x+half, l.y-1, l.x+half, l.y+e.angryLid-1, e.off)
		e.surface.FillTriangle(l.x+half, l.y-1, l.x+l.width, l.y-1, l.x+half, l.y+e.angryLid-1, e.off)
		return
	}
	e.surface.FillTriangle(l.x, l.y-1, l.x+l.width, l.y-1, l.x+l.width, l.y+e.angryLid-1, e.off)
	e.surface.FillTriangle(r.x, r.y-1, r.x+r.width, r.y-1, r.x, r.y+e.angryLid-1, e.off)
}

// drawHappyLids erases the bottom of each eye with a background rounded
// rectangle, inflated one pixel per side to mask the eye's anti-aliased edge.
func (e *Eyes) drawHappyLids() {
	e.happyLid = tween(e.happyLid, e.happyLidNext)
	l := &e.left
	e.surface.FillRoundRect(l.x-1, l.y+l.height-e.happyLid+1, l.width+2, l.height+2, l.radius, e.off)
	if !e.cyclops {
		r := &e.right
		e.surface.FillRoundRect(r.x-1, r.y+r.height-e.happyLid+1, r.width+2, r.height+2, r.radius, e.off)
	}
}

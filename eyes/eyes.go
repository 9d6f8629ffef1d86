// Package eyes draws a pair of smoothly animated robot eyes on a small
// monochrome display. The engine keeps a target and a current value for every
// piece of eye geometry and blends them a little closer each frame, layering
// moods (tired, angry, happy) and macro animations (blinking, idle
// look-around, confused and laugh shakes) on top.
//
// The engine never sleeps and never touches hardware; it renders through the
// Surface interface and is driven by Update with a caller-supplied monotonic
// millisecond clock.
package eyes

import (
	"image/color"
	"math/rand"
	"time"
)

const (
	defaultScreenWidth  = 128
	defaultScreenHeight = 64
	defaultFrameRate    = 50

	defaultEyeWidth  = 36
	defaultEyeHeight = 36
	defaultRadius    = 8
	defaultSpace     = 10

	// Jittered intervals in whole seconds, matching the classic tuning.
	defaultBlinkInterval  = 1
	defaultBlinkVariation = 4
	defaultIdleInterval   = 1
	defaultIdleVariation  = 3

	confusedDuration  = 500 // ms
	laughDuration     = 500 // ms
	confusedAmplitude = 10
	laughAmplitude    = 5

	defaultHFlickerAmplitude = 2
	defaultVFlickerAmplitude = 10

	// Curious mode: extra height for the eye aimed near its outward travel
	// limit, and how close to the limit counts as looking sideways.
	curiousOffset = 6
	curiousEdge   = 10
)

// eye holds one eye's tweening state. Current values chase their *Next
// targets through truncating halving averages, so they approach targets
// asymptotically and may settle one pixel short.
type eye struct {
	widthDefault  int
	heightDefault int
	width         int
	height        int
	widthNext     int
	heightNext    int
	heightOffset  int

	radiusDefault int
	radius        int
	radiusNext    int

	x, y         int
	xNext, yNext int

	open bool
}

// Eyes is the animation engine. One instance owns all of its state; drive it
// from a single goroutine and marshal external triggers through a channel if
// the host is concurrent.
type Eyes struct {
	surface Surface

	screenWidth  int
	screenHeight int

	frameInterval int64 // ms between renders
	lastFrame     int64

	on  color.RGBA
	off color.RGBA

	tired   bool
	angry   bool
	happy   bool
	curious bool
	cyclops bool

	left  eye
	right eye

	spaceDefault int
	space        int
	spaceNext    int

	// Mood eyelids, tweened like everything else.
	tiredLid     int
	tiredLidNext int
	angryLid     int
	angryLidNext int
	happyLid     int
	happyLidNext int

	hFlicker    bool
	hFlickerAlt bool
	hFlickerAmp int
	vFlicker    bool
	vFlickerAlt bool
	vFlickerAmp int

	autoblinker    bool
	blinkInterval  int
	blinkVariation int
	blinkAt        int64

	idle          bool
	idleInterval  int
	idleVariation int
	idleAt        int64

	confused       bool
	confusedToggle bool
	confusedAt     int64

	laugh       bool
	laughToggle bool
	laughAt     int64

	rng *rand.Rand
}

// Config holds the engine's instance-wide settings. Zero values select the
// classic 128x64 at 50 fps defaults.
type Config struct {
	Width     int
	Height    int
	FrameRate int
}

// New returns an engine rendering into s, configured with defaults and with
// both eyes closed. Call Configure to adjust screen size and frame rate.
func New(s Surface) *Eyes {
	e := &Eyes{
		surface:      s,
		screenWidth:  defaultScreenWidth,
		screenHeight: defaultScreenHeight,

		on:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		off: color.RGBA{A: 255},

		spaceDefault: defaultSpace,
		space:        defaultSpace,
		spaceNext:    defaultSpace,

		blinkInterval:  defaultBlinkInterval,
		blinkVariation: defaultBlinkVariation,
		idleInterval:   defaultIdleInterval,
		idleVariation:  defaultIdleVariation,

		hFlickerAmp: defaultHFlickerAmplitude,
		vFlickerAmp: defaultVFlickerAmplitude,

		confusedToggle: true,
		laughToggle:    true,

		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	e.left = newEye()
	e.right = newEye()
	e.SetFramerate(defaultFrameRate)
	e.resetPositions()
	return e
}

func newEye() eye {
	return eye{
		widthDefault:  defaultEyeWidth,
		heightDefault: defaultEyeHeight,
		width:         defaultEyeWidth,
		height:        1, // start closed
		widthNext:     defaultEyeWidth,
		heightNext:    defaultEyeHeight,
		radiusDefault: defaultRadius,
		radius:        defaultRadius,
		radiusNext:    defaultRadius,
	}
}

// Configure applies the screen geometry and frame rate and re-centers both
// eyes, closed. Negative dimensions clamp to one pixel rather than computing
// invalid geometry.
func (e *Eyes) Configure(cfg Config) {
	switch {
	case cfg.Width > 0:
		e.screenWidth = cfg.Width
	case cfg.Width < 0:
		e.screenWidth = 1
	default:
		e.screenWidth = defaultScreenWidth
	}
	switch {
	case cfg.Height > 0:
		e.screenHeight = cfg.Height
	case cfg.Height < 0:
		e.screenHeight = 1
	default:
		e.screenHeight = defaultScreenHeight
	}
	e.SetFramerate(cfg.FrameRate)

	e.left.height = 1
	e.right.height = 1
	e.resetPositions()
}

// resetPositions centers both eyes for the current screen and default sizes.
func (e *Eyes) resetPositions() {
	x := (e.screenWidth - (e.left.widthDefault + e.spaceDefault + e.right.widthDefault)) / 2
	y := (e.screenHeight - e.left.heightDefault) / 2
	e.left.x, e.left.y = x, y
	e.left.xNext, e.left.yNext = x, y

	rx := x + e.left.widthDefault + e.spaceDefault
	e.right.x, e.right.y = rx, y
	e.right.xNext, e.right.yNext = rx, y
}

// Update advances the animation and renders one frame if at least one frame
// interval has passed since the previous render, otherwise it is a no-op.
// now is a monotonic millisecond clock supplied by the caller. A late caller
// gets exactly one frame, never a catch-up burst: the frame timer rebases to
// now. The returned error is the surface's present error.
func (e *Eyes) Update(now int64) error {
	if now-e.lastFrame < e.frameInterval {
		return nil
	}
	e.lastFrame = now
	return e.drawFrame(now)
}

// maxX returns the left eye's horizontal travel limit. Default sizes are used
// on purpose: limits derived from the currently animating sizes would feed
// back into the animation at the boundaries.
func (e *Eyes) maxX() int {
	return e.screenWidth - e.left.widthDefault - e.spaceDefault - e.right.widthDefault
}

// maxY returns the left eye's vertical travel limit, from the default height
// because the current height varies while blinking and in curious mode.
func (e *Eyes) maxY() int {
	return e.screenHeight - e.left.heightDefault
}

// tween moves current halfway toward next, truncating. Repeated application
// converges to within one unit of next and stays there.
func tween(current, next int) int {
	return (current + next) / 2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

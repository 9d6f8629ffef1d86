// Package cmd turns external trigger events into calls on the eye engine:
// newline-terminated text commands from a serial console or chat bridge, and
// binary gesture packets from the motion board. Producers run wherever they
// like; everything funnels through channels so a single consumer loop applies
// triggers in order.
package cmd

// Gesture codes reported by the motion board's classifiers.
type Gesture int

const (
	GestureNone Gesture = 0x00 + iota
	GestureShake
	GestureJerk
	GestureTiltLeft
	GestureTiltRight
	GestureFreefall
	GestureSpin
	GestureUpright
)

// Trigger is one decoded motion event. Intensity scales the reaction where
// that makes sense (flicker amplitude); zero means "use the default".
type Trigger struct {
	Gesture   Gesture
	Intensity int
}

// Trigger packet on the wire: [Header, gesture, intensity, checksum] with
// checksum = gesture + intensity.
const (
	TriggerHeader = 0xAA
	TriggerLen    = 4
)

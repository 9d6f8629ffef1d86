package cmd

import (
	"fmt"

	"github.com/zenith-8-bit/zenith/eyes"
)

func ParseMood(s string) eyes.Mood {
	switch s {
	case "tired":
		return eyes.MoodTired
	case "angry":
		return eyes.MoodAngry
	case "happy":
		return eyes.MoodHappy
	default:
		return eyes.MoodNeutral
	}
}

func ParsePosition(s string) eyes.Position {
	switch s {
	case "n":
		return eyes.PositionN
	case "ne":
		return eyes.PositionNE
	case "e":
		return eyes.PositionE
	case "se":
		return eyes.PositionSE
	case "s":
		return eyes.PositionS
	case "sw":
		return eyes.PositionSW
	case "w":
		return eyes.PositionW
	case "nw":
		return eyes.PositionNW
	default:
		return eyes.PositionCenter
	}
}

func parseOnOff(s string) (bool, error) {
	switch s {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", s)
	}
}

// parseSides resolves the optional left/right/both selector of the blink
// family of commands. No selector means both eyes.
func parseSides(args []string) (left, right bool, err error) {
	if len(args) == 0 {
		return true, true, nil
	}
	switch args[0] {
	case "left":
		return true, false, nil
	case "right":
		return false, true, nil
	case "both":
		return true, true, nil
	default:
		return false, false, fmt.Errorf("expected left, right or both, got %q", args[0])
	}
}

// DecodeTrigger validates one motion packet and returns the trigger it
// carries.
func DecodeTrigger(packet []byte) (Trigger, error) {
	if len(packet) != TriggerLen {
		return Trigger{}, fmt.Errorf("trigger packet length %d, want %d", len(packet), TriggerLen)
	}
	if packet[0] != TriggerHeader {
		return Trigger{}, fmt.Errorf("bad trigger header 0x%02X", packet[0])
	}
	if packet[3] != packet[1]+packet[2] {
		return Trigger{}, fmt.Errorf("trigger checksum mismatch: got 0x%02X, want 0x%02X",
			packet[3], packet[1]+packet[2])
	}
	return Trigger{Gesture: Gesture(packet[1]), Intensity: int(packet[2])}, nil
}

// EncodeTrigger builds the packet DecodeTrigger accepts. The motion board
// firmware mirrors this framing.
func EncodeTrigger(t Trigger) [TriggerLen]byte {
	g := byte(t.Gesture)
	i := byte(t.Intensity)
	return [TriggerLen]byte{TriggerHeader, g, i, g + i}
}

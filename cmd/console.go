package cmd

import (
	"fmt"
	"strconv"

	"github.com/google/shlex"

	"github.com/zenith-8-bit/zenith/eyes"
)

// Apply parses one console line and applies it to the eyes. Lines look like:
//
//	mood happy
//	look ne
//	blink left
//	autoblink on 1 4
//	flicker h on 10
//	width 36 36
//
// Unknown moods and directions fall back to neutral/center; unknown verbs and
// malformed arguments are reported as errors.
func Apply(e *eyes.Eyes, line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("bad command line: %w", err)
	}
	if len(args) == 0 {
		return nil
	}
	verb, args := args[0], args[1:]

	switch verb {
	case "mood":
		if len(args) != 1 {
			return fmt.Errorf("usage: mood neutral|tired|angry|happy")
		}
		e.SetMood(ParseMood(args[0]))

	case "look":
		if len(args) != 1 {
			return fmt.Errorf("usage: look center|n|ne|e|se|s|sw|w|nw")
		}
		e.SetPosition(ParsePosition(args[0]))

	case "blink", "open", "close":
		left, right, err := parseSides(args)
		if err != nil {
			return err
		}
		switch verb {
		case "blink":
			e.BlinkEyes(left, right)
		case "open":
			e.OpenEyes(left, right)
		case "close":
			e.CloseEyes(left, right)
		}

	case "confused":
		e.AnimConfused()

	case "laugh":
		e.AnimLaugh()

	case "autoblink", "idle":
		on, interval, variation, err := parseToggleTiming(args)
		if err != nil {
			return fmt.Errorf("%s: %w", verb, err)
		}
		if verb == "autoblink" {
			e.SetAutoblinker(on, interval, variation)
		} else {
			e.SetIdleMode(on, interval, variation)
		}

	case "curious", "cyclops":
		if len(args) != 1 {
			return fmt.Errorf("usage: %s on|off", verb)
		}
		on, err := parseOnOff(args[0])
		if err != nil {
			return err
		}
		if verb == "curious" {
			e.SetCuriosity(on)
		} else {
			e.SetCyclops(on)
		}

	case "flicker":
		if len(args) < 2 {
			return fmt.Errorf("usage: flicker h|v on|off [amplitude]")
		}
		on, err := parseOnOff(args[1])
		if err != nil {
			return err
		}
		amplitude := 0
		if len(args) > 2 {
			if amplitude, err = strconv.Atoi(args[2]); err != nil {
				return fmt.Errorf("flicker amplitude: %w", err)
			}
		}
		switch args[0] {
		case "h":
			e.SetHFlicker(on, amplitude)
		case "v":
			e.SetVFlicker(on, amplitude)
		default:
			return fmt.Errorf("flicker axis must be h or v, got %q", args[0])
		}

	case "width", "height", "radius":
		left, right, err := parsePair(args)
		if err != nil {
			return fmt.Errorf("%s: %w", verb, err)
		}
		switch verb {
		case "width":
			e.SetWidth(left, right)
		case "height":
			e.SetHeight(left, right)
		case "radius":
			e.SetBorderRadius(left, right)
		}

	case "space":
		if len(args) != 1 {
			return fmt.Errorf("usage: space <px>")
		}
		px, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("space: %w", err)
		}
		e.SetSpaceBetween(px)

	default:
		return fmt.Errorf("unknown command %q", verb)
	}
	return nil
}

// parseToggleTiming handles "on [interval variation]" and "off" argument
// shapes shared by autoblink and idle.
func parseToggleTiming(args []string) (on bool, interval, variation int, err error) {
	if len(args) != 1 && len(args) != 3 {
		return false, 0, 0, fmt.Errorf("expected on|off [interval variation]")
	}
	if on, err = parseOnOff(args[0]); err != nil {
		return false, 0, 0, err
	}
	if len(args) == 3 {
		if interval, err = strconv.Atoi(args[1]); err != nil {
			return false, 0, 0, fmt.Errorf("interval: %w", err)
		}
		if variation, err = strconv.Atoi(args[2]); err != nil {
			return false, 0, 0, fmt.Errorf("variation: %w", err)
		}
	}
	return on, interval, variation, nil
}

func parsePair(args []string) (left, right int, err error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected <left> <right>")
	}
	if left, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, err
	}
	if right, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, err
	}
	return left, right, nil
}

// ApplyTrigger maps a motion gesture onto an eye reaction.
func ApplyTrigger(e *eyes.Eyes, t Trigger) {
	switch t.Gesture {
	case GestureShake:
		e.AnimConfused()
	case GestureJerk:
		e.AnimLaugh()
	case GestureTiltLeft:
		e.SetPosition(eyes.PositionW)
	case GestureTiltRight:
		e.SetPosition(eyes.PositionE)
	case GestureFreefall:
		// Wide-eyed alarm: snap fully open and hold center.
		e.Open()
		e.SetMood(eyes.MoodNeutral)
		e.SetPosition(eyes.PositionCenter)
	case GestureSpin:
		e.SetHFlicker(true, t.Intensity)
	case GestureUpright:
		e.SetHFlicker(false, 0)
		e.SetVFlicker(false, 0)
		e.SetMood(eyes.MoodNeutral)
		e.SetPosition(eyes.PositionCenter)
	}
}

package eyes

// Mood selects the eyelid expression. Moods are mutually exclusive; setting
// one clears the others.
type Mood uint8

const (
	MoodNeutral Mood = iota
	MoodTired
	MoodAngry
	MoodHappy
)

func (m Mood) String() string {
	switch m {
	case MoodNeutral:
		return "neutral"
	case MoodTired:
		return "tired"
	case MoodAngry:
		return "angry"
	case MoodHappy:
		return "happy"
	default:
		return "INVALID"
	}
}

// Position is one of the nine predefined gaze directions.
type Position uint8

const (
	PositionCenter Position = iota
	PositionN
	PositionNE
	PositionE
	PositionSE
	PositionS
	PositionSW
	PositionW
	PositionNW
)

func (p Position) String() string {
	switch p {
	case PositionCenter:
		return "center"
	case PositionN:
		return "n"
	case PositionNE:
		return "ne"
	case PositionE:
		return "e"
	case PositionSE:
		return "se"
	case PositionS:
		return "s"
	case PositionSW:
		return "sw"
	case PositionW:
		return "w"
	case PositionNW:
		return "nw"
	default:
		return "INVALID"
	}
}

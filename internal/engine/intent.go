package engine

// IntentKind is the vocabulary of player intents the engine understands.
type IntentKind int

const (
	IntentLeft IntentKind = iota
	IntentRight
	IntentSelect
	IntentRestart
)

func (k IntentKind) String() string {
	switch k {
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentSelect:
		return "select"
	case IntentRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Intent is one queued player action.
type Intent struct {
	Kind IntentKind
	Tile int // Tile id for IntentSelect
}

// Left steers the player left by one move.
func Left() Intent { return Intent{Kind: IntentLeft} }

// Right steers the player right by one move.
func Right() Intent { return Intent{Kind: IntentRight} }

// Select picks a tile in the sequence variant.
func Select(tile int) Intent { return Intent{Kind: IntentSelect, Tile: tile} }

// Restart begins a new session from Ready or Over.
func Restart() Intent { return Intent{Kind: IntentRestart} }

// maxPendingIntents bounds the per-step intent queue.
const maxPendingIntents = 32

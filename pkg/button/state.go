package button

// InteractionState is the canonical visual state of a button, derived
// from its enabled, looks-over, and looks-pressed flags. Paint
// strategies key their appearance off this value and nothing else.
type InteractionState int

const (
	// StateIdle is an enabled button with no engagement.
	StateIdle InteractionState = iota
	// StateOver is an enabled button with a pointer over it.
	StateOver
	// StatePressed is an enabled button that looks pressed.
	StatePressed
	// StateDisabled is a disabled button.
	StateDisabled
	// StateDisabledPressed is a disabled button that still looks
	// pressed (e.g. a latched sticky button).
	StateDisabledPressed
)

func (s InteractionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateOver:
		return "over"
	case StatePressed:
		return "pressed"
	case StateDisabled:
		return "disabled"
	case StateDisabledPressed:
		return "disabledPressed"
	default:
		return "unknown"
	}
}

// DeriveState maps the three input flags to an InteractionState.
//
// The precedence disabled > pressed > over > idle is load-bearing:
// every paint strategy depends on exactly this tie-break order.
func DeriveState(enabled, looksOver, looksPressed bool) InteractionState {
	switch {
	case !enabled && looksPressed:
		return StateDisabledPressed
	case !enabled:
		return StateDisabled
	case looksPressed:
		return StatePressed
	case looksOver:
		return StateOver
	default:
		return StateIdle
	}
}

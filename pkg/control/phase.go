package control

// Phase is the pointer capture state of a controller
type Phase int

const (
	// PhaseOverview is the initial state: uncaptured, no teleport yet
	PhaseOverview Phase = iota
	// PhaseCaptured means the pointer is captured
	PhaseCaptured
	// PhaseReleased means capture was held at least once and is now lost
	PhaseReleased
)

func (p Phase) String() string {
	switch p {
	case PhaseOverview:
		return "overview"
	case PhaseCaptured:
		return "captured"
	case PhaseReleased:
		return "released"
	}
	return "unknown"
}

// next returns the phase after a capture change
func (p Phase) next(captured bool) Phase {
	if captured {
		return PhaseCaptured
	}
	if p == PhaseOverview {
		return PhaseOverview
	}
	return PhaseReleased
}

// Hint is the short instruction shown to the user in phase p
func (p Phase) Hint() string {
	switch p {
	case PhaseCaptured:
		return "Arrow keys to walk, keep walking to run, Esc to release"
	case PhaseReleased:
		return "Click to resume walking"
	}
	return "Click to explore the city"
}

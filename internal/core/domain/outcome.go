package domain

// CompileOutcome reports what EnsureCompiled registered with the document.
type CompileOutcome uint8

const (
	// OutcomeUnavailable means nothing was registered.
	OutcomeUnavailable CompileOutcome = iota
	// OutcomeCompiled means the compiled stylesheet was registered.
	OutcomeCompiled
	// OutcomeFellBack means the fallback stylesheets were registered instead.
	OutcomeFellBack
)

// String returns a short, human-readable outcome.
func (o CompileOutcome) String() string {
	switch o {
	case OutcomeCompiled:
		return "compiled"
	case OutcomeFellBack:
		return "fell-back"
	default:
		return "unavailable"
	}
}

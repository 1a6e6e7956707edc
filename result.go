package etched

// Outcome distinguishes how a parse ended.
type Outcome int

const (
	// Resolved means every argument was consumed, and values are ready to be read.
	Resolved Outcome = iota
	// Terminal means a terminal option or a stopping callback ended the parse.
	// The program is expected to print the result's text and exit successfully.
	Terminal
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Result describes a successful parse.
type Result struct {
	Outcome Outcome
	// Tag is the option that ended a terminal parse.
	Tag string
	// Text is what should be printed for a terminal parse.
	Text string
}

// IsTerminal reports whether the program should print Text and exit.
func (r Result) IsTerminal() bool {
	return r.Outcome == Terminal
}

package entities

// Outcome classifies how a command execution ended.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFailure
	OutcomeTimeout
	OutcomeAuthFailure
	OutcomeInvalidInput
)

// String returns the display text used when reporting an outcome to users
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "Success"
	case OutcomeFailure:
		return "Failure"
	case OutcomeTimeout:
		return "Timeout error"
	case OutcomeAuthFailure:
		return "Authentication error"
	case OutcomeInvalidInput:
		return "Invalid input"
	default:
		return "Unknown"
	}
}

// CommandResult carries the raw device output plus the classified outcome.
// The outcome is derived by the result interpreter, never by the transport.
type CommandResult struct {
	Output  string
	Outcome Outcome
}

// OK returns true when the command completed successfully
func (cr CommandResult) OK() bool {
	return cr.Outcome == OutcomeSuccess
}

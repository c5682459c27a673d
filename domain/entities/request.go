package entities

// RequestKind classifies what a command request does on the device.
type RequestKind int

const (
	RequestShow RequestKind = iota
	RequestConfig
	RequestPing
)

// String returns the canonical name of the request kind
func (rk RequestKind) String() string {
	switch rk {
	case RequestShow:
		return "show"
	case RequestConfig:
		return "config"
	case RequestPing:
		return "ping"
	default:
		return "unknown"
	}
}

// CommandRequest is a validated, normalized set of command lines bound for a device
type CommandRequest struct {
	Kind  RequestKind
	Lines []string
}

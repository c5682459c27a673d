package linux

import (
	"github.com/netagent-io/netagent/domain/entities"
)

const (
	promptLogin    = "login:"
	promptPassword = "Password:"
	promptUser     = "$"
	promptRoot     = "#"
)

// Driver implements the platform behaviour for generic Linux hosts.
type Driver struct{}

// New creates a new Linux driver instance.
func New() *Driver {
	return &Driver{}
}

// Name returns the canonical device kind.
func (d *Driver) Name() entities.DeviceKind {
	return entities.KindLinux
}

// AuthenticationSequence returns the Linux login prompt sequence.
func (d *Driver) AuthenticationSequence(username, password string) []entities.AuthPrompt {
	return []entities.AuthPrompt{
		{WaitFor: promptLogin, SendCmd: username + "\n"},
		{WaitFor: promptPassword, SendCmd: password + "\n"},
	}
}

// PromptPatterns returns the substrings that mark a returned shell prompt.
func (d *Driver) PromptPatterns() []string {
	return []string{promptRoot, promptUser}
}

// PrivilegedPrompt returns the root shell prompt.
func (d *Driver) PrivilegedPrompt() string {
	return promptRoot
}

// PagingOffCommand returns empty; shells do not page command output.
func (d *Driver) PagingOffCommand() string {
	return ""
}

// EnableCommand returns empty; there is no separate privileged mode to enter.
func (d *Driver) EnableCommand() string {
	return ""
}

// ConfigModeCommands returns the lines unchanged; a shell has no config mode.
func (d *Driver) ConfigModeCommands(lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

// PingMarker returns the substring Linux ping prints per echo reply.
func (d *Driver) PingMarker() string {
	return "bytes from"
}

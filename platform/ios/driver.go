package ios

import (
	"github.com/netagent-io/netagent/domain/entities"
)

const (
	promptUsername   = "Username:"
	promptPassword   = "Password:"
	promptUser       = ">"
	promptPrivileged = "#"
)

// Driver implements the platform behaviour for Cisco IOS devices.
type Driver struct{}

// New creates a new IOS driver instance.
func New() *Driver {
	return &Driver{}
}

// Name returns the canonical device kind.
func (d *Driver) Name() entities.DeviceKind {
	return entities.KindCiscoIOS
}

// AuthenticationSequence returns the IOS login prompt sequence.
func (d *Driver) AuthenticationSequence(username, password string) []entities.AuthPrompt {
	return []entities.AuthPrompt{
		{WaitFor: promptUsername, SendCmd: username + "\n"},
		{WaitFor: promptPassword, SendCmd: password + "\n"},
	}
}

// PromptPatterns returns the substrings that mark a returned prompt.
func (d *Driver) PromptPatterns() []string {
	return []string{promptPrivileged, promptUser}
}

// PrivilegedPrompt returns the enable-mode prompt.
func (d *Driver) PrivilegedPrompt() string {
	return promptPrivileged
}

// PagingOffCommand disables --More-- paging so output comes back in one read.
func (d *Driver) PagingOffCommand() string {
	return "terminal length 0"
}

// EnableCommand returns the privilege elevation command.
func (d *Driver) EnableCommand() string {
	return "enable"
}

// ConfigModeCommands wraps the lines in config-mode entry and exit.
func (d *Driver) ConfigModeCommands(lines []string) []string {
	commands := make([]string, 0, len(lines)+2)
	commands = append(commands, "configure terminal")
	commands = append(commands, lines...)
	commands = append(commands, "end")
	return commands
}

// PingMarker returns the per-reply success character IOS ping prints.
func (d *Driver) PingMarker() string {
	return "!"
}

package platform

import (
	"fmt"
	"strings"

	"github.com/netagent-io/netagent/domain/entities"
	"github.com/netagent-io/netagent/platform/ios"
	"github.com/netagent-io/netagent/platform/linux"
)

// Driver defines the behaviour required to support a device platform.
type Driver interface {
	Name() entities.DeviceKind

	// AuthenticationSequence returns the login sequence for line-based
	// transports that drive the login prompts themselves
	AuthenticationSequence(username, password string) []entities.AuthPrompt

	// PromptPatterns returns every substring that marks the device has
	// returned control of the prompt
	PromptPatterns() []string

	// PrivilegedPrompt returns the prompt shown in privileged mode
	PrivilegedPrompt() string

	// PagingOffCommand returns the command that disables output paging,
	// or empty when the platform does not page
	PagingOffCommand() string

	// EnableCommand returns the privilege elevation command, or empty
	// when the platform has no separate privileged mode
	EnableCommand() string

	// ConfigModeCommands wraps configuration lines with the platform's
	// config-mode entry and exit statements
	ConfigModeCommands(lines []string) []string

	// PingMarker returns the substring the platform emits per successful
	// echo reply
	PingMarker() string
}

var registry = []Driver{
	ios.New(),
	linux.New(),
}

// Get returns a driver by normalized device kind.
func Get(kind entities.DeviceKind) (Driver, error) {
	normalized := entities.DeviceKind(normalizeName(string(kind)))
	for _, driver := range registry {
		if driver.Name() == normalized {
			return driver, nil
		}
	}
	return nil, fmt.Errorf("unknown device kind: %s", kind)
}

// Available returns all registered drivers.
func Available() []Driver {
	out := make([]Driver, len(registry))
	copy(out, registry)
	return out
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

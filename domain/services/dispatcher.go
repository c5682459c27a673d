package services

import (
	"fmt"
	"strings"

	"github.com/netagent-io/netagent/domain/entities"
	"github.com/netagent-io/netagent/domain/faults"
)

const pingVerb = "ping"

// NormalizeLines flattens a command set into discrete non-blank lines.
// Each element may itself be a multi-line block; a single block and the
// equivalent explicit slice normalize to the same sequence.
func NormalizeLines(lines []string) []string {
	normalized := make([]string, 0, len(lines))
	for _, block := range lines {
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				normalized = append(normalized, line)
			}
		}
	}
	return normalized
}

// NewShowRequest validates a single show command
func NewShowRequest(command string) (entities.CommandRequest, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return entities.CommandRequest{}, fmt.Errorf("empty show command: %w", faults.ErrInvalidInput)
	}
	return entities.CommandRequest{Kind: entities.RequestShow, Lines: []string{command}}, nil
}

// NewConfigRequest normalizes a configuration command set and rejects empty ones
func NewConfigRequest(commands []string) (entities.CommandRequest, error) {
	lines := NormalizeLines(commands)
	if len(lines) == 0 {
		return entities.CommandRequest{}, fmt.Errorf("no valid configuration commands provided: %w", faults.ErrInvalidInput)
	}
	return entities.CommandRequest{Kind: entities.RequestConfig, Lines: lines}, nil
}

// NewPingRequest validates that the command actually starts with the ping verb.
// Rejection happens here, before any session is opened.
func NewPingRequest(command string) (entities.CommandRequest, error) {
	command = strings.TrimSpace(command)
	fields := strings.Fields(command)
	if len(fields) == 0 || fields[0] != pingVerb {
		return entities.CommandRequest{}, fmt.Errorf("command must start with '%s': %w", pingVerb, faults.ErrInvalidInput)
	}
	return entities.CommandRequest{Kind: entities.RequestPing, Lines: []string{command}}, nil
}

package services

import (
	"errors"
	"strings"

	"github.com/netagent-io/netagent/domain/entities"
	"github.com/netagent-io/netagent/domain/faults"
)

// PingNoResponse is the output substituted when no success marker is found
const PingNoResponse = "Ping failed. No response received."

// Interpret maps a session fault to a stable outcome. Transport errors are
// classified exactly once here; callers never see them.
func Interpret(output string, err error) entities.CommandResult {
	if err == nil {
		return entities.CommandResult{Output: output, Outcome: entities.OutcomeSuccess}
	}
	switch {
	case errors.Is(err, faults.ErrAuth):
		return entities.CommandResult{Output: output, Outcome: entities.OutcomeAuthFailure}
	case errors.Is(err, faults.ErrTimeout), errors.Is(err, faults.ErrConnect):
		// An unreachable host is reported as a timeout, same as a silent one
		return entities.CommandResult{Output: output, Outcome: entities.OutcomeTimeout}
	case errors.Is(err, faults.ErrInvalidInput):
		return entities.CommandResult{Output: output, Outcome: entities.OutcomeInvalidInput}
	default:
		return entities.CommandResult{Output: output, Outcome: entities.OutcomeFailure}
	}
}

// InterpretPing classifies ping output by scanning for the platform's success
// marker. At least one marker anywhere means at least one echo reply came back.
func InterpretPing(output, marker string, err error) entities.CommandResult {
	if err != nil {
		return Interpret(output, err)
	}
	if marker != "" && strings.Contains(output, marker) {
		return entities.CommandResult{Output: output, Outcome: entities.OutcomeSuccess}
	}
	return entities.CommandResult{Output: PingNoResponse, Outcome: entities.OutcomeFailure}
}

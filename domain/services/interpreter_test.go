package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/netagent-io/netagent/domain/entities"
	"github.com/netagent-io/netagent/domain/faults"
)

func TestInterpret_Success(t *testing.T) {
	result := Interpret("Cisco IOS Software", nil)
	if result.Outcome != entities.OutcomeSuccess {
		t.Errorf("Expected Success, got %s", result.Outcome)
	}
	if result.Output != "Cisco IOS Software" {
		t.Errorf("Output should pass through, got %q", result.Output)
	}
}

func TestInterpret_FaultMapping(t *testing.T) {
	cases := []struct {
		err     error
		outcome entities.Outcome
	}{
		{fmt.Errorf("no prompt from 10.0.0.1: %w", faults.ErrTimeout), entities.OutcomeTimeout},
		{fmt.Errorf("failed to connect: %w", faults.ErrConnect), entities.OutcomeTimeout},
		{fmt.Errorf("rejected: %w", faults.ErrAuth), entities.OutcomeAuthFailure},
		{fmt.Errorf("empty command set: %w", faults.ErrInvalidInput), entities.OutcomeInvalidInput},
		{errors.New("broken pipe"), entities.OutcomeFailure},
	}

	for _, tc := range cases {
		result := Interpret("", tc.err)
		if result.Outcome != tc.outcome {
			t.Errorf("Expected %s for %v, got %s", tc.outcome, tc.err, result.Outcome)
		}
	}
}

func TestInterpretPing_MarkerPresent(t *testing.T) {
	output := "Sending 5, 100-byte ICMP Echos to 10.0.0.1:\n!!!!!\nSuccess rate is 100 percent"
	result := InterpretPing(output, "!", nil)
	if result.Outcome != entities.OutcomeSuccess {
		t.Errorf("Expected Success, got %s", result.Outcome)
	}
	if result.Output != output {
		t.Error("Raw output should be preserved on success")
	}
}

func TestInterpretPing_SingleMarkerIsEnough(t *testing.T) {
	result := InterpretPing("....!", "!", nil)
	if result.Outcome != entities.OutcomeSuccess {
		t.Errorf("Expected Success for one marker, got %s", result.Outcome)
	}
}

func TestInterpretPing_NoMarker(t *testing.T) {
	result := InterpretPing("Sending 5, 100-byte ICMP Echos:\n.....\nSuccess rate is 0 percent", "!", nil)
	if result.Outcome != entities.OutcomeFailure {
		t.Errorf("Expected Failure, got %s", result.Outcome)
	}
	if result.Output != PingNoResponse {
		t.Errorf("Expected %q, got %q", PingNoResponse, result.Output)
	}
}

func TestInterpretPing_LinuxMarker(t *testing.T) {
	output := "64 bytes from 10.0.0.1: icmp_seq=1 ttl=64 time=0.3 ms"
	result := InterpretPing(output, "bytes from", nil)
	if result.Outcome != entities.OutcomeSuccess {
		t.Errorf("Expected Success, got %s", result.Outcome)
	}
}

func TestInterpretPing_ErrorWins(t *testing.T) {
	err := fmt.Errorf("no prompt: %w", faults.ErrTimeout)
	result := InterpretPing("!!!", "!", err)
	if result.Outcome != entities.OutcomeTimeout {
		t.Errorf("Expected Timeout, got %s", result.Outcome)
	}
}

package transport

import (
	"errors"
	"testing"

	"github.com/netagent-io/netagent/domain/entities"
	"github.com/netagent-io/netagent/domain/faults"
)

func TestOpen_UnknownKind(t *testing.T) {
	opener := NewOpener()

	_, err := opener.Open(entities.DeviceCredentials{
		Host:     "10.0.0.1",
		Username: "admin",
		Password: "password",
		Kind:     "junos",
	})
	if err == nil {
		t.Fatal("Expected error for unknown device kind")
	}
	if !errors.Is(err, faults.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestStripEcho(t *testing.T) {
	output := "show version\nCisco IOS Software\nUptime is 5 weeks\nswitch#"
	stripped := stripEcho(output)
	expected := "Cisco IOS Software\nUptime is 5 weeks"
	if stripped != expected {
		t.Errorf("Expected %q, got %q", expected, stripped)
	}
}

func TestStripEcho_SingleLine(t *testing.T) {
	if stripEcho("switch#") != "" {
		t.Error("Expected empty output for prompt-only read")
	}
}

func TestSSHSession_SendAfterClose(t *testing.T) {
	session := &SSHSession{creds: entities.DeviceCredentials{Host: "10.0.0.1"}}
	session.Close()
	session.Close() // must stay safe on repeated calls

	if err := session.send("show version\n"); err == nil {
		t.Error("Expected error sending on a closed session")
	}
}

func TestTelnetSession_CloseIdempotent(t *testing.T) {
	session := newTelnetSession(entities.DeviceCredentials{Host: "10.0.0.1"}, nil)
	session.Close()
	session.Close()
}

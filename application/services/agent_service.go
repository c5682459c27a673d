package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/netagent-io/netagent/domain/entities"
	"github.com/netagent-io/netagent/domain/faults"
	"github.com/netagent-io/netagent/domain/ports"
	"github.com/netagent-io/netagent/domain/services"
	"github.com/netagent-io/netagent/platform"
)

const (
	// ShowReadTimeout bounds prompt reads for show and configuration commands
	ShowReadTimeout = 20 * time.Second

	// PingReadTimeout is longer because the device waits out unanswered echoes
	PingReadTimeout = 30 * time.Second
)

// AgentService exposes the show, configure, and ping operations. Every
// operation owns its session end to end: acquire, act, interpret, release.
type AgentService struct {
	opener ports.SessionOpener
}

// NewAgentService creates a new agent service on top of a session opener
func NewAgentService(opener ports.SessionOpener) *AgentService {
	return &AgentService{opener: opener}
}

// Show runs a single read-only command and returns the classified result
func (a *AgentService) Show(command string, creds entities.DeviceCredentials) entities.CommandResult {
	req, err := services.NewShowRequest(command)
	if err != nil {
		return services.Interpret("", err)
	}

	session, err := a.opener.Open(creds)
	if err != nil {
		return services.Interpret("", err)
	}
	defer session.Close()

	if creds.IsDebugEnabled() {
		fmt.Printf("DEBUG: Sending command: %s\n", req.Lines[0])
	}
	output, err := session.Run(req.Lines[0], ShowReadTimeout)
	return services.Interpret(output, err)
}

// Configure applies a set of configuration commands in privileged mode.
// Commands may arrive as one multi-line block or as discrete lines; both
// normalize to the same sequence. An empty set is rejected before any
// connection is attempted.
func (a *AgentService) Configure(commands []string, creds entities.DeviceCredentials) entities.CommandResult {
	req, err := services.NewConfigRequest(commands)
	if err != nil {
		return services.Interpret("", err)
	}

	driver, err := platform.Get(creds.Kind)
	if err != nil {
		return services.Interpret("", fmt.Errorf("%v: %w", err, faults.ErrInvalidInput))
	}

	session, err := a.opener.Open(creds)
	if err != nil {
		return services.Interpret("", err)
	}
	defer session.Close()

	if err := session.Enable(); err != nil {
		return services.Interpret("", err)
	}

	if creds.IsDebugEnabled() {
		fmt.Printf("DEBUG: Applying configuration commands: %v\n", req.Lines)
	}

	var output strings.Builder
	for _, cmd := range driver.ConfigModeCommands(req.Lines) {
		text, err := session.Run(cmd, ShowReadTimeout)
		if text != "" {
			output.WriteString(text)
			output.WriteString("\n")
		}
		if err != nil {
			return services.Interpret(output.String(), err)
		}
	}

	if creds.IsDebugEnabled() {
		fmt.Println("DEBUG: Configuration applied")
	}
	return services.Interpret(output.String(), nil)
}

// Ping runs a ping command and classifies the reply by the platform's
// success marker. Commands not starting with the ping verb are rejected
// before any connection is attempted.
func (a *AgentService) Ping(command string, creds entities.DeviceCredentials) entities.CommandResult {
	req, err := services.NewPingRequest(command)
	if err != nil {
		return services.Interpret("", err)
	}

	driver, err := platform.Get(creds.Kind)
	if err != nil {
		return services.Interpret("", fmt.Errorf("%v: %w", err, faults.ErrInvalidInput))
	}

	session, err := a.opener.Open(creds)
	if err != nil {
		return services.Interpret("", err)
	}
	defer session.Close()

	if creds.IsDebugEnabled() {
		fmt.Printf("DEBUG: Sending ping command: %s\n", req.Lines[0])
	}
	output, err := session.Run(req.Lines[0], PingReadTimeout)
	return services.InterpretPing(output, driver.PingMarker(), err)
}

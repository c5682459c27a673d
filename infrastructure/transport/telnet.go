package transport

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/ziutek/telnet"

	"github.com/netagent-io/netagent/domain/entities"
	"github.com/netagent-io/netagent/domain/faults"
	"github.com/netagent-io/netagent/platform"
)

const (
	// ConnectTimeout bounds dialing plus the login prompt exchange
	ConnectTimeout = 30 * time.Second
	BufferSize     = 4096
	PromptPassword = "Password:"
)

// TelnetSession manages a Telnet session with a device
type TelnetSession struct {
	creds      entities.DeviceCredentials
	driver     platform.Driver
	conn       *telnet.Conn
	privileged bool
}

// newTelnetSession creates a new Telnet session handle with the given credentials
func newTelnetSession(creds entities.DeviceCredentials, driver platform.Driver) *TelnetSession {
	return &TelnetSession{creds: creds, driver: driver}
}

func (ts *TelnetSession) connect() error {
	conn, err := telnet.DialTimeout("tcp", ts.creds.Host+":23", ConnectTimeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %v: %w", ts.creds.Host, err, faults.ErrConnect)
	}
	ts.conn = conn
	if ts.creds.IsDebugEnabled() {
		fmt.Printf("DEBUG: Connected to %s\n", ts.creds.Host)
	}

	for _, p := range ts.driver.AuthenticationSequence(ts.creds.Username, ts.creds.Password) {
		output, err := ts.readUntil([]string{p.WaitFor}, ConnectTimeout)
		if err != nil {
			ts.Close()
			return fmt.Errorf("failed to wait for %s: %w, output: %s", p.WaitFor, err, output)
		}
		if p.SendCmd != "" {
			ts.conn.Write([]byte(p.SendCmd))
			if ts.creds.IsDebugEnabled() {
				fmt.Printf("DEBUG: Sent response for prompt %s\n", p.WaitFor)
			}
		}
	}

	initial, err := ts.readUntil(ts.driver.PromptPatterns(), ConnectTimeout)
	if err != nil {
		lower := strings.ToLower(initial)
		if strings.Contains(lower, "login invalid") || strings.Contains(lower, "login incorrect") {
			ts.Close()
			return fmt.Errorf("authentication rejected by %s: %w", ts.creds.Host, faults.ErrAuth)
		}
		ts.Close()
		return err
	}
	ts.privileged = strings.Contains(initial, ts.driver.PrivilegedPrompt())

	if paging := ts.driver.PagingOffCommand(); paging != "" {
		ts.conn.Write([]byte(paging + "\n"))
		if _, err := ts.readUntil(ts.driver.PromptPatterns(), ConnectTimeout); err != nil {
			ts.Close()
			return err
		}
	}

	return nil
}

// Enable elevates the session to privileged mode; no-op when already there
func (ts *TelnetSession) Enable() error {
	cmd := ts.driver.EnableCommand()
	if cmd == "" || ts.privileged {
		return nil
	}
	if ts.creds.IsDebugEnabled() {
		fmt.Printf("DEBUG: Elevating to privileged mode on %s\n", ts.creds.Host)
	}
	ts.conn.Write([]byte(cmd + "\n"))

	output, err := ts.readUntil([]string{PromptPassword, ts.driver.PrivilegedPrompt()}, ConnectTimeout)
	if err != nil {
		return err
	}

	if strings.Contains(output, PromptPassword) {
		ts.conn.Write([]byte(ts.creds.EnablePassword + "\n"))
		output, err = ts.readUntil([]string{ts.driver.PrivilegedPrompt(), PromptPassword}, ConnectTimeout)
		if err != nil {
			return err
		}
		if strings.Contains(output, PromptPassword) {
			return fmt.Errorf("enable password rejected by %s: %w", ts.creds.Host, faults.ErrAuth)
		}
	}

	ts.privileged = true
	return nil
}

// Run sends one command line and blocks until the prompt returns or the
// timeout elapses
func (ts *TelnetSession) Run(cmd string, timeout time.Duration) (string, error) {
	if ts.creds.IsDebugEnabled() {
		fmt.Printf("DEBUG: Executing: %s\n", cmd)
	}
	ts.conn.Write([]byte(cmd + "\n"))
	output, err := ts.readUntil(ts.driver.PromptPatterns(), timeout)
	if err != nil {
		return output, fmt.Errorf("error executing %s: %w", cmd, err)
	}

	output = stripEcho(output)

	if ts.creds.IsRawOutputEnabled() {
		fmt.Printf("Device output for '%s':\n%s\n", cmd, output)
	}
	return output, nil
}

// Close tears the session down; safe to call more than once
func (ts *TelnetSession) Close() {
	if ts.conn != nil {
		ts.conn.Close()
		ts.conn = nil
		if ts.creds.IsDebugEnabled() {
			fmt.Println("DEBUG: Disconnected")
		}
	}
}

// readUntil reads from the Telnet connection until one of the patterns shows up
func (ts *TelnetSession) readUntil(patterns []string, timeout time.Duration) (string, error) {
	buffer := make([]byte, BufferSize)
	var output strings.Builder
	output.Grow(BufferSize)
	deadline := time.Now().Add(timeout)

	for {
		ts.conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))

		n, err := ts.conn.Read(buffer)
		if n > 0 {
			output.Write(buffer[:n])
			if ts.creds.IsRawOutputEnabled() {
				fmt.Printf("Device output: Read: %s\n", string(buffer[:n]))
			}
			text := output.String()
			for _, pattern := range patterns {
				if strings.Contains(text, pattern) {
					return text, nil
				}
			}
		}

		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				if time.Now().After(deadline) {
					return output.String(), fmt.Errorf("no prompt from %s within %s: %w", ts.creds.Host, timeout, faults.ErrTimeout)
				}
				continue
			}
			return output.String(), fmt.Errorf("read error: %v", err)
		}

		if time.Now().After(deadline) {
			return output.String(), fmt.Errorf("no prompt from %s within %s: %w", ts.creds.Host, timeout, faults.ErrTimeout)
		}
	}
}

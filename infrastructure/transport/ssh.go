package transport

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/netagent-io/netagent/domain/entities"
	"github.com/netagent-io/netagent/domain/faults"
	"github.com/netagent-io/netagent/platform"
)

// SSHSession manages an SSH session with a device
type SSHSession struct {
	creds      entities.DeviceCredentials
	driver     platform.Driver
	client     *ssh.Client
	session    *ssh.Session
	stdin      io.WriteCloser
	reader     *bufio.Reader
	netConn    net.Conn
	privileged bool
}

// newSSHSession creates a new SSH session handle with the given credentials
func newSSHSession(creds entities.DeviceCredentials, driver platform.Driver) *SSHSession {
	return &SSHSession{creds: creds, driver: driver}
}

func (ss *SSHSession) connect() error {
	addr := net.JoinHostPort(ss.creds.Host, "22")
	sshConfig := &ssh.ClientConfig{
		User:            ss.creds.Username,
		Auth:            []ssh.AuthMethod{ssh.Password(ss.creds.Password)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         ConnectTimeout,
	}

	dialer := &net.Dialer{Timeout: ConnectTimeout}
	rawConn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s via SSH: %v: %w", ss.creds.Host, err, faults.ErrConnect)
	}

	clientConn, chans, reqs, err := ssh.NewClientConn(rawConn, addr, sshConfig)
	if err != nil {
		rawConn.Close()
		if strings.Contains(err.Error(), "unable to authenticate") {
			return fmt.Errorf("authentication rejected by %s: %w", ss.creds.Host, faults.ErrAuth)
		}
		return fmt.Errorf("failed to establish SSH connection to %s: %v: %w", ss.creds.Host, err, faults.ErrConnect)
	}

	client := ssh.NewClient(clientConn, chans, reqs)

	session, err := client.NewSession()
	if err != nil {
		client.Close()
		rawConn.Close()
		return fmt.Errorf("failed to create SSH session for %s: %v: %w", ss.creds.Host, err, faults.ErrConnect)
	}

	modes := ssh.TerminalModes{
		ssh.ECHO:          0,
		ssh.TTY_OP_ISPEED: 9600,
		ssh.TTY_OP_OSPEED: 9600,
	}
	if err := session.RequestPty("vt100", 80, 40, modes); err != nil {
		session.Close()
		client.Close()
		rawConn.Close()
		return fmt.Errorf("failed to request PTY for %s: %v", ss.creds.Host, err)
	}

	stdin, err := session.StdinPipe()
	if err != nil {
		session.Close()
		client.Close()
		rawConn.Close()
		return fmt.Errorf("failed to get stdin pipe for %s: %v", ss.creds.Host, err)
	}

	stdout, err := session.StdoutPipe()
	if err != nil {
		session.Close()
		client.Close()
		rawConn.Close()
		return fmt.Errorf("failed to get stdout pipe for %s: %v", ss.creds.Host, err)
	}

	if err := session.Shell(); err != nil {
		session.Close()
		client.Close()
		rawConn.Close()
		return fmt.Errorf("failed to start shell for %s: %v", ss.creds.Host, err)
	}

	ss.client = client
	ss.session = session
	ss.stdin = stdin
	ss.reader = bufio.NewReader(stdout)
	ss.netConn = rawConn

	if ss.creds.IsDebugEnabled() {
		fmt.Printf("DEBUG: Connected to %s via SSH\n", ss.creds.Host)
	}

	initial, err := ss.readUntilAny(ss.driver.PromptPatterns(), ConnectTimeout)
	if err != nil {
		ss.Close()
		return err
	}
	ss.privileged = strings.Contains(initial, ss.driver.PrivilegedPrompt())

	if paging := ss.driver.PagingOffCommand(); paging != "" {
		if err := ss.send(paging + "\n"); err != nil {
			ss.Close()
			return fmt.Errorf("failed to disable paging on %s: %v", ss.creds.Host, err)
		}
		if _, err := ss.readUntilAny(ss.driver.PromptPatterns(), ConnectTimeout); err != nil {
			ss.Close()
			return err
		}
	}

	return nil
}

// Enable elevates the session to privileged mode; no-op when already there
func (ss *SSHSession) Enable() error {
	cmd := ss.driver.EnableCommand()
	if cmd == "" || ss.privileged {
		return nil
	}
	if ss.creds.IsDebugEnabled() {
		fmt.Printf("DEBUG: Elevating to privileged mode on %s\n", ss.creds.Host)
	}
	if err := ss.send(cmd + "\n"); err != nil {
		return fmt.Errorf("failed to send enable command to %s: %v", ss.creds.Host, err)
	}

	patterns := append([]string{PromptPassword}, ss.driver.PrivilegedPrompt())
	output, err := ss.readUntilAny(patterns, ConnectTimeout)
	if err != nil {
		return err
	}

	if strings.Contains(output, PromptPassword) {
		if err := ss.send(ss.creds.EnablePassword + "\n"); err != nil {
			return fmt.Errorf("failed to send enable password to %s: %v", ss.creds.Host, err)
		}
		output, err = ss.readUntilAny([]string{ss.driver.PrivilegedPrompt(), PromptPassword}, ConnectTimeout)
		if err != nil {
			return err
		}
		if strings.Contains(output, PromptPassword) {
			return fmt.Errorf("enable password rejected by %s: %w", ss.creds.Host, faults.ErrAuth)
		}
	}

	ss.privileged = true
	return nil
}

// Run sends one command line and blocks until the prompt returns or the
// timeout elapses
func (ss *SSHSession) Run(cmd string, timeout time.Duration) (string, error) {
	if ss.creds.IsDebugEnabled() {
		fmt.Printf("DEBUG: Executing: %s\n", cmd)
	}
	if err := ss.send(cmd + "\n"); err != nil {
		return "", fmt.Errorf("failed to send command %s: %v", cmd, err)
	}

	output, err := ss.readUntilAny(ss.driver.PromptPatterns(), timeout)
	if err != nil {
		return output, fmt.Errorf("error executing %s: %w", cmd, err)
	}

	output = stripEcho(output)

	if ss.creds.IsRawOutputEnabled() {
		fmt.Printf("Device output for '%s':\n%s\n", cmd, output)
	}

	return output, nil
}

// Close tears the session down; safe to call more than once
func (ss *SSHSession) Close() {
	if ss.session != nil {
		ss.session.Close()
		ss.session = nil
	}
	if ss.client != nil {
		ss.client.Close()
		ss.client = nil
	}
	if ss.netConn != nil {
		ss.netConn.Close()
		ss.netConn = nil
	}
	ss.stdin = nil
	ss.reader = nil
	if ss.creds.IsDebugEnabled() {
		fmt.Println("DEBUG: Disconnected")
	}
}

func (ss *SSHSession) send(data string) error {
	if ss.stdin == nil {
		return fmt.Errorf("session to %s is closed", ss.creds.Host)
	}
	_, err := ss.stdin.Write([]byte(data))
	return err
}

func (ss *SSHSession) readUntilAny(patterns []string, timeout time.Duration) (string, error) {
	buffer := make([]byte, BufferSize)
	var output strings.Builder
	output.Grow(BufferSize)
	deadline := time.Now().Add(timeout)

	for {
		if ss.netConn != nil {
			_ = ss.netConn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
		}

		n, err := ss.reader.Read(buffer)
		if n > 0 {
			output.Write(buffer[:n])
			if ss.creds.IsRawOutputEnabled() {
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
					return output.String(), fmt.Errorf("no prompt from %s within %s: %w", ss.creds.Host, timeout, faults.ErrTimeout)
				}
				continue
			}
			return output.String(), fmt.Errorf("read error: %v", err)
		}

		if time.Now().After(deadline) {
			return output.String(), fmt.Errorf("no prompt from %s within %s: %w", ss.creds.Host, timeout, faults.ErrTimeout)
		}
	}
}

// stripEcho drops the echoed command line and the trailing prompt line
func stripEcho(output string) string {
	lines := strings.Split(output, "\n")
	if len(lines) > 1 {
		return strings.Join(lines[1:len(lines)-1], "\n")
	}
	return ""
}

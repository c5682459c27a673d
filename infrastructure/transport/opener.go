package transport

import (
	"fmt"

	"github.com/netagent-io/netagent/domain/entities"
	"github.com/netagent-io/netagent/domain/faults"
	"github.com/netagent-io/netagent/domain/ports"
	"github.com/netagent-io/netagent/platform"
)

// Opener builds one session per call; sessions are never pooled or shared
type Opener struct{}

// NewOpener creates a session opener
func NewOpener() *Opener {
	return &Opener{}
}

// Open connects and authenticates a session for the provided credentials
func (o *Opener) Open(creds entities.DeviceCredentials) (ports.DeviceSession, error) {
	driver, err := platform.Get(creds.Kind)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, faults.ErrInvalidInput)
	}

	if creds.Transport == "telnet" {
		session := newTelnetSession(creds, driver)
		if err := session.connect(); err != nil {
			return nil, err
		}
		return session, nil
	}

	session := newSSHSession(creds, driver)
	if err := session.connect(); err != nil {
		return nil, err
	}
	return session, nil
}

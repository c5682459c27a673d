package ports

import (
	"time"

	"github.com/netagent-io/netagent/domain/entities"
)

// DeviceSession defines the port for one authenticated device connection.
// A session is owned by the call that opened it and must not be shared.
type DeviceSession interface {
	Run(cmd string, timeout time.Duration) (string, error)
	Enable() error
	Close()
}

// SessionOpener defines the port for building sessions from credentials
type SessionOpener interface {
	Open(creds entities.DeviceCredentials) (DeviceSession, error)
}

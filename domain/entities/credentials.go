package entities

// DeviceKind identifies the platform a set of credentials targets.
type DeviceKind string

const (
	KindCiscoIOS DeviceKind = "cisco_ios"
	KindLinux    DeviceKind = "linux"
)

// DeviceCredentials defines everything needed to reach one device for one call
type DeviceCredentials struct {
	Host           string     `yaml:"host"`
	Transport      string     `yaml:"transport"`
	Username       string     `yaml:"username"`
	Password       string     `yaml:"password"`
	EnablePassword string     `yaml:"enable_password"`
	Kind           DeviceKind `yaml:"kind"`
	VerbosityLevel int
}

// IsDebugEnabled returns true if debug logs are enabled
func (dc DeviceCredentials) IsDebugEnabled() bool {
	return dc.VerbosityLevel == 1 || dc.VerbosityLevel == 3
}

// IsRawOutputEnabled returns true if raw device output is enabled
func (dc DeviceCredentials) IsRawOutputEnabled() bool {
	return dc.VerbosityLevel == 2 || dc.VerbosityLevel == 3
}

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/subosito/gotenv"
	"gopkg.in/yaml.v3"

	"github.com/netagent-io/netagent/domain/entities"
)

// Environment variable names, kept compatible with the original .env layout
const (
	EnvHost           = "CISCO_HOST"
	EnvUsername       = "CISCO_USERNAME"
	EnvPassword       = "CISCO_PASSWORD"
	EnvEnablePassword = "CISCO_ENABLE_PASSWORD"
	EnvAPIKey         = "API_KEY"
)

// Config defines the global configuration
type Config struct {
	Transport      string                       `yaml:"transport"`
	Kind           entities.DeviceKind          `yaml:"kind"`
	Username       string                       `yaml:"username"`
	Password       string                       `yaml:"password"`
	EnablePassword string                       `yaml:"enable_password"`
	SnmpCommunity  string                       `yaml:"snmp_community"`
	Devices        []entities.DeviceCredentials `yaml:"devices"`
	APIKey         string                       `yaml:"-"`
}

func validateKind(kind entities.DeviceKind) error {
	switch kind {
	case entities.KindCiscoIOS, entities.KindLinux:
		return nil
	default:
		return fmt.Errorf("kind %s is invalid, must be 'cisco_ios' or 'linux'", kind)
	}
}

func validateTransport(transport string) error {
	if transport != "ssh" && transport != "telnet" {
		return fmt.Errorf("transport %s is invalid, must be 'ssh' or 'telnet'", transport)
	}
	return nil
}

// Load loads and validates configuration from a YAML file. A .env file in the
// working directory is applied to the environment first; environment values
// override the file's global credentials.
func Load(yamlFile string, verbosityLevel int) (*Config, error) {
	_ = gotenv.Load()

	data, err := os.ReadFile(yamlFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %v", yamlFile, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %v", err)
	}

	applyEnv(&cfg)

	cfg.Transport = strings.ToLower(strings.TrimSpace(cfg.Transport))
	if cfg.Transport == "" {
		cfg.Transport = "ssh"
	}
	if err := validateTransport(cfg.Transport); err != nil {
		return nil, err
	}

	cfg.Kind = entities.DeviceKind(strings.ToLower(strings.TrimSpace(string(cfg.Kind))))
	if cfg.Kind == "" {
		cfg.Kind = entities.KindCiscoIOS
	}
	if err := validateKind(cfg.Kind); err != nil {
		return nil, err
	}

	if cfg.SnmpCommunity == "" {
		cfg.SnmpCommunity = "public"
	}

	if verbosityLevel == 1 || verbosityLevel == 3 {
		fmt.Printf("DEBUG: Global values: Transport=%s, Kind=%s, Username=%s\n", cfg.Transport, cfg.Kind, cfg.Username)
	}

	for i := range cfg.Devices {
		dev := &cfg.Devices[i]

		if dev.Host == "" {
			return nil, fmt.Errorf("host is required for device %d", i)
		}

		dev.Transport = strings.ToLower(strings.TrimSpace(dev.Transport))
		if dev.Transport == "" {
			dev.Transport = cfg.Transport
		}
		if err := validateTransport(dev.Transport); err != nil {
			return nil, fmt.Errorf("invalid transport for device %s: %w", dev.Host, err)
		}

		dev.Kind = entities.DeviceKind(strings.ToLower(strings.TrimSpace(string(dev.Kind))))
		if dev.Kind == "" {
			dev.Kind = cfg.Kind
		}
		if err := validateKind(dev.Kind); err != nil {
			return nil, fmt.Errorf("invalid kind for device %s: %w", dev.Host, err)
		}

		if dev.Username == "" {
			dev.Username = cfg.Username
		}
		if dev.Password == "" {
			dev.Password = cfg.Password
		}
		if dev.EnablePassword == "" {
			dev.EnablePassword = cfg.EnablePassword
		}

		if dev.Username == "" {
			return nil, fmt.Errorf("username is required for device %s", dev.Host)
		}
		if dev.Password == "" {
			return nil, fmt.Errorf("password is required for device %s", dev.Host)
		}

		dev.VerbosityLevel = verbosityLevel
	}

	return &cfg, nil
}

// FindDevice returns the configured credentials for a target host
func (c *Config) FindDevice(target string) (entities.DeviceCredentials, bool) {
	for _, dev := range c.Devices {
		if dev.Host == target {
			return dev, true
		}
	}
	return entities.DeviceCredentials{}, false
}

// FromEnv builds credentials purely from the environment, for running
// without a configuration file
func FromEnv(verbosityLevel int) (entities.DeviceCredentials, error) {
	_ = gotenv.Load()

	creds := entities.DeviceCredentials{
		Host:           os.Getenv(EnvHost),
		Username:       os.Getenv(EnvUsername),
		Password:       os.Getenv(EnvPassword),
		EnablePassword: os.Getenv(EnvEnablePassword),
		Transport:      "ssh",
		Kind:           entities.KindCiscoIOS,
		VerbosityLevel: verbosityLevel,
	}
	if creds.Host == "" {
		return creds, fmt.Errorf("%s is not set", EnvHost)
	}
	if creds.Username == "" {
		return creds, fmt.Errorf("%s is not set", EnvUsername)
	}
	if creds.Password == "" {
		return creds, fmt.Errorf("%s is not set", EnvPassword)
	}
	return creds, nil
}

func applyEnv(cfg *Config) {
	if host := os.Getenv(EnvHost); host != "" && len(cfg.Devices) == 0 {
		cfg.Devices = append(cfg.Devices, entities.DeviceCredentials{Host: host})
	}
	if username := os.Getenv(EnvUsername); username != "" {
		cfg.Username = username
	}
	if password := os.Getenv(EnvPassword); password != "" {
		cfg.Password = password
	}
	if enable := os.Getenv(EnvEnablePassword); enable != "" {
		cfg.EnablePassword = enable
	}
	cfg.APIKey = os.Getenv(EnvAPIKey)
}

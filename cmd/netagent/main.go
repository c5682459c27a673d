package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/netagent-io/netagent/application/services"
	"github.com/netagent-io/netagent/domain/entities"
	"github.com/netagent-io/netagent/infrastructure/config"
	"github.com/netagent-io/netagent/infrastructure/snmp"
	"github.com/netagent-io/netagent/infrastructure/transport"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <command...>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  --op string        Operation: show, configure, ping, or probe (default \"show\")\n")
	fmt.Fprintf(os.Stderr, "  --target string    Device host (required unless set in config or environment)\n")
	fmt.Fprintf(os.Stderr, "  --config string    YAML configuration file (default \"config.yaml\")\n")
	fmt.Fprintf(os.Stderr, "  --user string      Username override\n")
	fmt.Fprintf(os.Stderr, "  --pass string      Password override\n")
	fmt.Fprintf(os.Stderr, "  --enable string    Enable password override\n")
	fmt.Fprintf(os.Stderr, "  --kind string      Device kind: cisco_ios or linux\n")
	fmt.Fprintf(os.Stderr, "  --transport string Transport: ssh or telnet\n")
	fmt.Fprintf(os.Stderr, "  --community string SNMP community for probe (default \"public\")\n")
	fmt.Fprintf(os.Stderr, "  --verbose int      Verbosity: 0=none, 1=debug logs, 2=raw device output, 3=both\n")
	fmt.Fprintf(os.Stderr, "\nFor configure, each argument is one configuration line; arguments may\n")
	fmt.Fprintf(os.Stderr, "contain embedded newlines and blank lines are dropped.\n")
}

func main() {
	flag.Usage = printUsage
	yamlFile := flag.String("config", "config.yaml", "YAML configuration file")
	op := flag.String("op", "show", "Operation: show, configure, ping, or probe")
	target := flag.String("target", "", "Device host")
	user := flag.String("user", "", "Username override")
	pass := flag.String("pass", "", "Password override")
	enable := flag.String("enable", "", "Enable password override")
	kind := flag.String("kind", "", "Device kind: cisco_ios or linux")
	transportName := flag.String("transport", "", "Transport: ssh or telnet")
	community := flag.String("community", "", "SNMP community for probe")
	verbosity := flag.Int("verbose", 0, "Verbosity: 0=none, 1=debug logs, 2=raw device output, 3=both")
	flag.Parse()

	fmt.Printf("netagent %s (built %s)\n", version, buildTime)

	if *verbosity < 0 || *verbosity > 3 {
		fmt.Fprintf(os.Stderr, "Error: --verbose must be 0, 1, 2, or 3\n")
		flag.Usage()
		os.Exit(1)
	}

	creds, snmpCommunity, err := resolveCredentials(*yamlFile, *target, *verbosity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *user != "" {
		creds.Username = *user
	}
	if *pass != "" {
		creds.Password = *pass
	}
	if *enable != "" {
		creds.EnablePassword = *enable
	}
	if *kind != "" {
		creds.Kind = entities.DeviceKind(*kind)
	}
	if *transportName != "" {
		creds.Transport = *transportName
	}
	if *community != "" {
		snmpCommunity = *community
	}
	if creds.Host == "" {
		fmt.Fprintf(os.Stderr, "Error: no device target; use --target, a config file, or the environment\n")
		flag.Usage()
		os.Exit(1)
	}
	if *op != "probe" && (creds.Username == "" || creds.Password == "") {
		fmt.Fprintf(os.Stderr, "Error: no credentials for %s; use --user/--pass, a config file, or the environment\n", creds.Host)
		flag.Usage()
		os.Exit(1)
	}

	args := flag.Args()

	switch *op {
	case "probe":
		prober := snmp.NewProber(snmpCommunity, snmp.DefaultTimeout)
		facts, err := prober.Probe(creds.Host)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Name:   %s\n", facts.SysName)
		fmt.Printf("Descr:  %s\n", facts.SysDescr)
		fmt.Printf("Uptime: %s\n", facts.Uptime)
		return
	case "show", "configure", "ping":
		if len(args) == 0 {
			fmt.Fprintf(os.Stderr, "Error: no command given\n")
			flag.Usage()
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown operation %s\n", *op)
		flag.Usage()
		os.Exit(1)
	}

	agent := services.NewAgentService(transport.NewOpener())

	var result entities.CommandResult
	switch *op {
	case "show":
		result = agent.Show(strings.Join(args, " "), creds)
	case "configure":
		result = agent.Configure(args, creds)
	case "ping":
		result = agent.Ping(strings.Join(args, " "), creds)
	}

	fmt.Println(result.Outcome)
	if result.Output != "" {
		fmt.Println(result.Output)
	}
	if !result.OK() {
		os.Exit(1)
	}
}

// resolveCredentials loads device credentials from the config file when one
// can be found, falling back to the environment
func resolveCredentials(yamlFile, target string, verbosity int) (entities.DeviceCredentials, string, error) {
	configPath, found := findConfigFile(yamlFile, verbosity)
	if !found {
		creds, err := config.FromEnv(verbosity)
		if target != "" {
			creds.Host = target
		}
		if err != nil && creds.Host == "" {
			return creds, snmp.DefaultCommunity, fmt.Errorf("no config file and incomplete environment: %v", err)
		}
		// Gaps left by the environment may still be filled by flags;
		// the caller validates the merged credentials
		return creds, snmp.DefaultCommunity, nil
	}

	cfg, err := config.Load(configPath, verbosity)
	if err != nil {
		return entities.DeviceCredentials{}, snmp.DefaultCommunity, err
	}

	if target == "" {
		if len(cfg.Devices) != 1 {
			return entities.DeviceCredentials{}, cfg.SnmpCommunity, fmt.Errorf("--target is required when the config lists %d devices", len(cfg.Devices))
		}
		return cfg.Devices[0], cfg.SnmpCommunity, nil
	}

	if creds, ok := cfg.FindDevice(target); ok {
		return creds, cfg.SnmpCommunity, nil
	}

	// Target not listed: reuse the global credentials against it; flags
	// may still fill what the globals leave empty
	creds := entities.DeviceCredentials{
		Host:           target,
		Transport:      cfg.Transport,
		Username:       cfg.Username,
		Password:       cfg.Password,
		EnablePassword: cfg.EnablePassword,
		Kind:           cfg.Kind,
		VerbosityLevel: verbosity,
	}
	return creds, cfg.SnmpCommunity, nil
}

// findConfigFile searches the default locations when the default path is not
// overridden
func findConfigFile(yamlFile string, verbosity int) (string, bool) {
	if yamlFile != "config.yaml" {
		if _, err := os.Stat(yamlFile); err == nil {
			return yamlFile, true
		}
		return "", false
	}

	possiblePaths := []string{filepath.Join(".", "config.yaml")}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		possiblePaths = append(possiblePaths, filepath.Join(userConfigDir, "netagent", "config.yaml"))
	}
	possiblePaths = append(possiblePaths, "/etc/netagent/config.yaml")

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if verbosity == 1 || verbosity == 3 {
				fmt.Printf("DEBUG: Configuration file found at %s\n", path)
			}
			return path, true
		}
	}
	return "", false
}

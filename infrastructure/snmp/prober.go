// Package snmp provides a cheap identity and reachability probe that runs
// outside the terminal session stack.
package snmp

import (
	"fmt"
	"time"

	"github.com/gosnmp/gosnmp"
)

const (
	oidSysDescr  = ".1.3.6.1.2.1.1.1.0"
	oidSysUpTime = ".1.3.6.1.2.1.1.3.0"
	oidSysName   = ".1.3.6.1.2.1.1.5.0"

	// DefaultCommunity is the conventional read-only community string
	DefaultCommunity = "public"

	// DefaultTimeout bounds one probe round trip
	DefaultTimeout = 5 * time.Second
)

// DeviceFacts holds the identity values returned by a probe
type DeviceFacts struct {
	SysDescr string
	SysName  string
	Uptime   time.Duration
}

// Prober issues SNMP v2c GET requests against devices
type Prober struct {
	community string
	timeout   time.Duration
}

// NewProber creates a prober with the given community string
func NewProber(community string, timeout time.Duration) *Prober {
	if community == "" {
		community = DefaultCommunity
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Prober{community: community, timeout: timeout}
}

// Probe queries sysDescr, sysUpTime, and sysName from the target
func (p *Prober) Probe(target string) (*DeviceFacts, error) {
	params := &gosnmp.GoSNMP{
		Target:    target,
		Port:      161,
		Community: p.community,
		Version:   gosnmp.Version2c,
		Timeout:   p.timeout,
		Retries:   1,
		Transport: "udp",
	}

	if err := params.Connect(); err != nil {
		return nil, fmt.Errorf("failed to reach %s via SNMP: %v", target, err)
	}
	defer params.Conn.Close()

	result, err := params.Get([]string{oidSysDescr, oidSysUpTime, oidSysName})
	if err != nil {
		return nil, fmt.Errorf("SNMP GET failed for %s: %v", target, err)
	}

	facts := &DeviceFacts{}
	for _, variable := range result.Variables {
		switch variable.Name {
		case oidSysDescr:
			if bytes, ok := variable.Value.([]byte); ok {
				facts.SysDescr = string(bytes)
			}
		case oidSysName:
			if bytes, ok := variable.Value.([]byte); ok {
				facts.SysName = string(bytes)
			}
		case oidSysUpTime:
			if ticks, ok := variable.Value.(uint32); ok {
				// TimeTicks are hundredths of a second
				facts.Uptime = time.Duration(ticks) * 10 * time.Millisecond
			}
		}
	}

	return facts, nil
}

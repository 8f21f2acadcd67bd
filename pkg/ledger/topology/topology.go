// Package topology loads the YAML file describing which accounts exist,
// where their participant processes listen, and the coordinator's
// timeouts. Grounded on VanitasCaesar1-mantisdb/config's
// Default*/LoadFromFile/Validate split.
package topology

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// NodeConfig is one process's network address.
type NodeConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Addr returns the host:port dial target.
func (n NodeConfig) Addr() string {
	return fmt.Sprintf("%s:%d", n.Host, n.Port)
}

// TimeoutConfig holds the coordinator's per-RPC deadlines.
type TimeoutConfig struct {
	Prepare time.Duration `yaml:"prepare"`
	Commit  time.Duration `yaml:"commit"`
}

// InactivityConfig holds the idle thresholds that arm each node's
// inactivity monitor.
type InactivityConfig struct {
	Participant time.Duration `yaml:"participant"`
	Coordinator time.Duration `yaml:"coordinator"`
}

// Topology is the full cluster description: coordinator address, every
// participant address keyed by account, timeouts, and inactivity
// thresholds.
type Topology struct {
	Coordinator  NodeConfig            `yaml:"coordinator"`
	Participants map[string]NodeConfig `yaml:"participants"`
	Timeouts     TimeoutConfig         `yaml:"timeouts"`
	Inactivity   InactivityConfig      `yaml:"inactivity"`
}

// Default returns a two-account (alice, bob), localhost topology suitable for
// local experimentation.
func Default() *Topology {
	return &Topology{
		Coordinator: NodeConfig{Host: "localhost", Port: 7000},
		Participants: map[string]NodeConfig{
			"alice": {Host: "localhost", Port: 7001},
			"bob":   {Host: "localhost", Port: 7002},
		},
		Timeouts: TimeoutConfig{
			Prepare: 2 * time.Second,
			Commit:  2 * time.Second,
		},
		Inactivity: InactivityConfig{
			Participant: 30 * time.Second,
			Coordinator: 30 * time.Second,
		},
	}
}

// Load reads and parses a topology file, falling back to Default()
// values for anything the file omits.
func Load(path string) (*Topology, error) {
	t := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("topology: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("topology: parse %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the topology is complete enough to start a cluster.
func (t *Topology) Validate() error {
	if t.Coordinator.Host == "" || t.Coordinator.Port == 0 {
		return fmt.Errorf("topology: coordinator address is required")
	}
	if len(t.Participants) == 0 {
		return fmt.Errorf("topology: at least one participant is required")
	}
	for account, node := range t.Participants {
		if node.Host == "" || node.Port == 0 {
			return fmt.Errorf("topology: participant %q has an incomplete address", account)
		}
	}
	if t.Timeouts.Prepare <= 0 || t.Timeouts.Commit <= 0 {
		return fmt.Errorf("topology: prepare and commit timeouts must be positive")
	}
	return nil
}

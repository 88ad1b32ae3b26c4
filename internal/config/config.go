package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

const (
	DefaultStep       = 70
	DefaultThrottle   = Duration(120 * time.Millisecond)
	DefaultJitter     = Duration(50 * time.Millisecond)
	DefaultCursorPath = "LAST_SCANNED_BLOCK"
	DefaultSnapshots  = "snapshots"
	DefaultCertPrefix = "SENTINEL_CERT"
	DefaultPublishCmd = "ipfs"
)

// Duration parses Go duration strings ("120ms", "2s") out of YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	err := value.Decode(&raw)
	if err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Identity is embedded in attestations and announced to gateways through the
// User-Agent header, per the integration contract with the RPC providers.
type Identity struct {
	Tag          string `yaml:"tag"`
	Organization string `yaml:"organization"`
	Contact      string `yaml:"contact"`
}

type Paths struct {
	Cursor     string `yaml:"cursor"`
	Snapshots  string `yaml:"snapshots"`
	CertPrefix string `yaml:"cert_prefix"`
}

type Publish struct {
	Enabled     bool   `yaml:"enabled"`
	Command     string `yaml:"command"`
	StorageRoot string `yaml:"storage_root"`
}

type Config struct {
	// Endpoints is the ordered gateway fallback list; the first endpoint
	// answering a liveness probe wins.
	Endpoints []string `yaml:"endpoints"`
	// Watch is the fixed watched address set; normalized to EIP-55 checksum
	// form at load time.
	Watch    []string `yaml:"watch"`
	Genesis  uint64   `yaml:"genesis"`
	Step     uint64   `yaml:"step"`
	Throttle Duration `yaml:"throttle"`
	Jitter   Duration `yaml:"jitter"`
	Identity Identity `yaml:"identity"`
	Paths    Paths    `yaml:"paths"`
	Publish  Publish  `yaml:"publish"`
}

// Load reads, validates, and defaults the YAML config at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse is Load without the file read; split out for tests.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{
		Step:     DefaultStep,
		Throttle: DefaultThrottle,
		Jitter:   DefaultJitter,
		Paths: Paths{
			Cursor:     DefaultCursorPath,
			Snapshots:  DefaultSnapshots,
			CertPrefix: DefaultCertPrefix,
		},
		Publish: Publish{
			Command: DefaultPublishCmd,
		},
	}
	err := yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	err = cfg.validate()
	if err != nil {
		return nil, err
	}

	for i, addr := range cfg.Watch {
		if !common.IsHexAddress(addr) {
			return nil, fmt.Errorf("watched address %q is not a valid hex address", addr)
		}
		cfg.Watch[i] = common.HexToAddress(addr).Hex()
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Endpoints) == 0 {
		return errors.New("at least one gateway endpoint is required")
	}
	if len(c.Watch) == 0 {
		return errors.New("at least one watched address is required")
	}
	if c.Step == 0 {
		return errors.New("step must be at least 1")
	}
	if c.Identity.Tag == "" {
		return errors.New("identity.tag is required, it seals every certificate")
	}
	if c.Publish.Enabled && c.Publish.StorageRoot == "" {
		return errors.New("publish.storage_root is required when publishing is enabled")
	}
	return nil
}

// UserAgent renders the static client identity header announced on every
// gateway request.
func (c *Config) UserAgent() string {
	if c.Identity.Organization == "" {
		return c.Identity.Tag
	}
	if c.Identity.Contact == "" {
		return fmt.Sprintf("%s/%s", c.Identity.Tag, c.Identity.Organization)
	}
	return fmt.Sprintf("%s/%s (%s)", c.Identity.Tag, c.Identity.Organization, c.Identity.Contact)
}

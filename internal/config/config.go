// Package config loads the service configuration from a YAML file and
// LABORPLAN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"labor-planner/internal/model"
	"labor-planner/internal/planning"
	"labor-planner/pkg/utils"

	"gopkg.in/yaml.v3"
)

const (
	CatalogSourceStore = "store"
	CatalogSourceHTTP  = "http"

	defaultAddr          = ":8080"
	defaultDBPath        = "laborplan.db"
	defaultTimeout       = 10 * time.Second
	defaultClientTimeout = 30 * time.Second
)

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr         string `yaml:"addr"`
	ReadTimeout  string `yaml:"read_timeout"`
	WriteTimeout string `yaml:"write_timeout"`
}

// DatabaseConfig locates the sqlite catalog.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// CatalogConfig selects where the process catalog is read from during a calculation.
type CatalogConfig struct {
	Source      string `yaml:"source"`
	BaseURL     string `yaml:"base_url,omitempty"`
	Timeout     string `yaml:"timeout"`
	Concurrency int    `yaml:"concurrency"`
}

// ClientConfig configures calls to a remote laborplan server.
type ClientConfig struct {
	Timeout string `yaml:"timeout"`
}

// SupportConfig is the overhead fraction added as support headcount.
type SupportConfig struct {
	Default float64            `yaml:"default"`
	ByType  map[string]float64 `yaml:"by_type,omitempty"`
}

// PolicyConfig holds the planning assumptions that are not part of a request.
type PolicyConfig struct {
	WorkedHoursPercent float64       `yaml:"worked_hours_percent"`
	AbsPercent         float64       `yaml:"abs_percent"`
	Support            SupportConfig `yaml:"support"`
}

// Config models laborplan.yaml.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Client   ClientConfig   `yaml:"client"`
	Policy   PolicyConfig   `yaml:"policy"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server:   ServerConfig{Addr: defaultAddr, ReadTimeout: "10s", WriteTimeout: "10s"},
		Database: DatabaseConfig{Path: defaultDBPath},
		Catalog:  CatalogConfig{Source: CatalogSourceStore, Timeout: "10s", Concurrency: 4},
		Client:   ClientConfig{Timeout: "30s"},
		Policy:   PolicyConfig{WorkedHoursPercent: 1.0, AbsPercent: 0.0},
	}
}

// Load reads path (a missing file is fine when path is empty or does not exist),
// applies environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LABORPLAN_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("LABORPLAN_DB_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("LABORPLAN_CATALOG_SOURCE"); v != "" {
		c.Catalog.Source = v
	}
	if v := os.Getenv("LABORPLAN_CATALOG_URL"); v != "" {
		c.Catalog.BaseURL = v
	}
	if v := os.Getenv("LABORPLAN_CLIENT_TIMEOUT"); v != "" {
		c.Client.Timeout = v
	}
	floats := map[string]*float64{
		"LABORPLAN_WORKED_HOURS_PERCENT": &c.Policy.WorkedHoursPercent,
		"LABORPLAN_ABS_PERCENT":          &c.Policy.AbsPercent,
		"LABORPLAN_SUPPORT_FRACTION":     &c.Policy.Support.Default,
	}
	for name, dst := range floats {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", name, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("config: %s: %q is not a finite number", name, v)
		}
		*dst = f
	}
	return nil
}

// Validate checks ranges and the catalog source selection.
func (c *Config) Validate() error {
	var problems []string
	if c.Server.Addr == "" {
		problems = append(problems, "server.addr is required")
	}
	switch c.Catalog.Source {
	case CatalogSourceStore:
		if c.Database.Path == "" {
			problems = append(problems, "database.path is required for the store catalog")
		}
	case CatalogSourceHTTP:
		if c.Catalog.BaseURL == "" {
			problems = append(problems, "catalog.base_url is required for the http catalog")
		}
	default:
		problems = append(problems, fmt.Sprintf("catalog.source must be %q or %q, got %q", CatalogSourceStore, CatalogSourceHTTP, c.Catalog.Source))
	}
	if !(c.Policy.WorkedHoursPercent > 0 && c.Policy.WorkedHoursPercent <= 1) {
		problems = append(problems, fmt.Sprintf("policy.worked_hours_percent must be in (0, 1], got %v", c.Policy.WorkedHoursPercent))
	}
	if !(c.Policy.AbsPercent >= 0 && c.Policy.AbsPercent < 1) {
		problems = append(problems, fmt.Sprintf("policy.abs_percent must be in [0, 1), got %v", c.Policy.AbsPercent))
	}
	if !(c.Policy.Support.Default >= 0 && c.Policy.Support.Default <= 1) {
		problems = append(problems, fmt.Sprintf("policy.support.default must be in [0, 1], got %v", c.Policy.Support.Default))
	}
	for name, f := range c.Policy.Support.ByType {
		if _, ok := model.ParseProcessType(name); !ok {
			problems = append(problems, fmt.Sprintf("policy.support.by_type: unknown process type %q", name))
		}
		if !(f >= 0 && f <= 1) {
			problems = append(problems, fmt.Sprintf("policy.support.by_type.%s must be in [0, 1], got %v", name, f))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Corrections returns the default efficiency/absenteeism assumptions.
func (c Config) Corrections() planning.Corrections {
	return planning.Corrections{
		WorkedHoursPercent: c.Policy.WorkedHoursPercent,
		AbsPercent:         c.Policy.AbsPercent,
	}
}

// SupportPolicy builds the support headcount policy.
func (c Config) SupportPolicy() planning.SupportPolicy {
	byType := make(map[model.ProcessType]float64, len(c.Policy.Support.ByType))
	for name, f := range c.Policy.Support.ByType {
		if t, ok := model.ParseProcessType(name); ok {
			byType[t] = f
		}
	}
	return planning.StaticSupportPolicy{Default: c.Policy.Support.Default, ByType: byType}
}

func (c Config) ReadTimeout() time.Duration {
	return utils.ParseDuration(c.Server.ReadTimeout, defaultTimeout)
}

func (c Config) WriteTimeout() time.Duration {
	return utils.ParseDuration(c.Server.WriteTimeout, defaultTimeout)
}

func (c Config) CatalogTimeout() time.Duration {
	return utils.ParseDuration(c.Catalog.Timeout, defaultTimeout)
}

// ClientTimeout bounds one request to a remote laborplan server.
func (c Config) ClientTimeout() time.Duration {
	return utils.ParseDuration(c.Client.Timeout, defaultClientTimeout)
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/safetynet/alerts/pkg/logging"
)

const (
	DefaultConfigPath = "/etc/safetynet"
	ConfigFileName    = "safetynet.yml"
)

// Attribute sources.
const (
	SourceDefault     = "default"
	SourceFile        = "file"
	SourceEnvironment = "environment"
	SourceFlag        = "flag"
)

// Config holds the server settings.
type Config struct {
	// DataFile is the JSON fixture loaded at startup
	DataFile string `yaml:"data_file" json:"data_file"`

	BindAddress string `yaml:"bind_address" json:"bind_address"`
	Port        int    `yaml:"port" json:"port"`

	LogLevel  string `yaml:"log_level" json:"log_level"`
	LogFormat string `yaml:"log_format" json:"log_format"`

	// AccessLog enables combined-format request logging on stdout
	AccessLog bool `yaml:"access_log" json:"access_log"`

	AuditEnabled bool `yaml:"audit_enabled" json:"audit_enabled"`

	// WatchData reloads the store when DataFile changes
	WatchData bool `yaml:"watch_data" json:"watch_data"`

	MetricsEnabled bool `yaml:"metrics_enabled" json:"metrics_enabled"`

	sources        map[string]string
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// fileConfig mirrors Config with pointers so that explicit zero values in
// the file still override the defaults.
type fileConfig struct {
	DataFile       *string `yaml:"data_file"`
	BindAddress    *string `yaml:"bind_address"`
	Port           *int    `yaml:"port"`
	LogLevel       *string `yaml:"log_level"`
	LogFormat      *string `yaml:"log_format"`
	AccessLog      *bool   `yaml:"access_log"`
	AuditEnabled   *bool   `yaml:"audit_enabled"`
	WatchData      *bool   `yaml:"watch_data"`
	MetricsEnabled *bool   `yaml:"metrics_enabled"`
}

// Default returns a config holding only default values.
func Default() *Config {
	c := &Config{
		DataFile:       "data.json",
		BindAddress:    "0.0.0.0",
		Port:           8080,
		LogLevel:       "info",
		LogFormat:      "json",
		AccessLog:      true,
		AuditEnabled:   true,
		WatchData:      false,
		MetricsEnabled: true,
		sources:        make(map[string]string),
	}
	for _, name := range attributeNames() {
		c.sources[name] = SourceDefault
	}
	return c
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values; a missing file
// is not an error.
func Load() (*Config, error) {
	c := Default()

	configPath := os.Getenv("SAFETYNET_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	c.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(c.configFilePath); err == nil {
		var file fileConfig
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", c.configFilePath, err)
		}
		c.applyFileConfig(&file)
	}

	if err := c.applyEnvConfig(); err != nil {
		return nil, err
	}
	return c, nil
}

func attributeNames() []string {
	return []string{
		"data_file", "bind_address", "port", "log_level", "log_format",
		"access_log", "audit_enabled", "watch_data", "metrics_enabled",
	}
}

func (c *Config) applyFileConfig(file *fileConfig) {
	setString(&c.DataFile, file.DataFile, c.sources, "data_file")
	setString(&c.BindAddress, file.BindAddress, c.sources, "bind_address")
	setString(&c.LogLevel, file.LogLevel, c.sources, "log_level")
	setString(&c.LogFormat, file.LogFormat, c.sources, "log_format")
	if file.Port != nil {
		c.Port = *file.Port
		c.sources["port"] = SourceFile
	}
	setBool(&c.AccessLog, file.AccessLog, c.sources, "access_log")
	setBool(&c.AuditEnabled, file.AuditEnabled, c.sources, "audit_enabled")
	setBool(&c.WatchData, file.WatchData, c.sources, "watch_data")
	setBool(&c.MetricsEnabled, file.MetricsEnabled, c.sources, "metrics_enabled")
}

func setString(dst *string, v *string, sources map[string]string, name string) {
	if v != nil {
		*dst = *v
		sources[name] = SourceFile
	}
}

func setBool(dst *bool, v *bool, sources map[string]string, name string) {
	if v != nil {
		*dst = *v
		sources[name] = SourceFile
	}
}

func (c *Config) applyEnvConfig() error {
	strs := map[string]*string{
		"data_file":    &c.DataFile,
		"bind_address": &c.BindAddress,
		"log_level":    &c.LogLevel,
		"log_format":   &c.LogFormat,
	}
	for name, dst := range strs {
		if val := os.Getenv(envName(name)); val != "" {
			*dst = val
			c.sources[name] = SourceEnvironment
		}
	}

	if val := os.Getenv(envName("port")); val != "" {
		port, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", envName("port"), val, err)
		}
		c.Port = port
		c.sources["port"] = SourceEnvironment
	}

	bools := map[string]*bool{
		"access_log":      &c.AccessLog,
		"audit_enabled":   &c.AuditEnabled,
		"watch_data":      &c.WatchData,
		"metrics_enabled": &c.MetricsEnabled,
	}
	for name, dst := range bools {
		if val := os.Getenv(envName(name)); val != "" {
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid %s value %q: %w", envName(name), val, err)
			}
			*dst = b
			c.sources[name] = SourceEnvironment
		}
	}
	return nil
}

func envName(attribute string) string {
	return "SAFETYNET_" + strings.ToUpper(attribute)
}

// SetFlag records a value given on the command line. Unknown names are
// ignored.
func (c *Config) SetFlag(name, value string) error {
	switch name {
	case "data_file":
		c.DataFile = value
	case "bind_address":
		c.BindAddress = value
	case "port":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid port %q: %w", value, err)
		}
		c.Port = port
	case "watch_data":
		watch, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid watch_data %q: %w", value, err)
		}
		c.WatchData = watch
	default:
		return nil
	}
	c.sources[name] = SourceFlag
	return nil
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if s, ok := c.sources[name]; ok {
		return s
	}
	return SourceDefault
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.BindAddress, c.Port)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if !contains(logging.Formats, c.LogFormat) {
		return fmt.Errorf("invalid log format: %s", c.LogFormat)
	}
	if c.DataFile == "" {
		return fmt.Errorf("data_file must be set")
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "data_file", Value: c.DataFile, Source: c.Source("data_file")},
		{Name: "bind_address", Value: c.BindAddress, Source: c.Source("bind_address")},
		{Name: "port", Value: strconv.Itoa(c.Port), Source: c.Source("port")},
		{Name: "log_level", Value: c.LogLevel, Source: c.Source("log_level")},
		{Name: "log_format", Value: c.LogFormat, Source: c.Source("log_format")},
		{Name: "access_log", Value: strconv.FormatBool(c.AccessLog), Source: c.Source("access_log")},
		{Name: "audit_enabled", Value: strconv.FormatBool(c.AuditEnabled), Source: c.Source("audit_enabled")},
		{Name: "watch_data", Value: strconv.FormatBool(c.WatchData), Source: c.Source("watch_data")},
		{Name: "metrics_enabled", Value: strconv.FormatBool(c.MetricsEnabled), Source: c.Source("metrics_enabled")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

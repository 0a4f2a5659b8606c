package config

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fieldwork-dev/fieldwork/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "fieldwork.json"

	// DefaultPort is the default live server port.
	DefaultPort = 3000

	// DefaultHost is the default live server host.
	DefaultHost = "localhost"

	// DefaultSuccessHideMs is the default success indicator auto-hide
	// delay in milliseconds.
	DefaultSuccessHideMs = 5000
)

// Config represents the complete fieldwork.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Server contains live server settings.
	Server ServerConfig `json:"server,omitempty"`

	// Forms declares the forms served by the live endpoint.
	Forms []FormConfig `json:"forms,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains live server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`
}

// FormConfig declares one form.
type FormConfig struct {
	// Name identifies the form (e.g. "contact", "join").
	Name string `json:"name"`

	// SuccessText is the message shown by the success indicator.
	SuccessText string `json:"successText,omitempty"`

	// SuccessHideMs overrides the indicator auto-hide delay.
	SuccessHideMs int `json:"successHideMs,omitempty"`

	// Fields lists the form's fields in order.
	Fields []FieldConfig `json:"fields"`
}

// FieldConfig declares one field.
type FieldConfig struct {
	// Name identifies the field and selects its rules
	// ("email", "name", "message" carry rules; anything else is generic).
	Name string `json:"name"`

	// Label is the human-readable field label.
	Label string `json:"label,omitempty"`

	// Required marks the field as mandatory.
	Required bool `json:"required,omitempty"`
}

// Default returns the configuration used when no fieldwork.json exists:
// the marketing site's two forms with identical rules.
func Default() *Config {
	cfg := &Config{
		Name: "fieldwork",
		Forms: []FormConfig{
			{
				Name:        "contact",
				SuccessText: "Thank you! Your message has been sent.",
				Fields: []FieldConfig{
					{Name: "name", Label: "Name", Required: true},
					{Name: "email", Label: "Email", Required: true},
					{Name: "message", Label: "Message", Required: true},
				},
			},
			{
				Name:        "join",
				SuccessText: "Thanks for joining! We'll be in touch.",
				Fields: []FieldConfig{
					{Name: "name", Label: "Name", Required: true},
					{Name: "email", Label: "Email", Required: true},
				},
			},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads and validates the configuration from dir/fieldwork.json.
// A missing file yields Default() without error.
func Load(dir string) (*Config, error) {
	cfg, err := LoadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		var fe *errors.Error
		if stderrors.As(err, &fe) && fe.Code == errors.CodeConfigNotFound {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads and validates the configuration at an explicit path.
// Unlike Load, a missing file is an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.ConfigParse(path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.ConfigParse(path, err)
	}
	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to its origin path, or dir/fieldwork.json
// if it was never loaded from disk.
func (c *Config) Save(dir string) error {
	path := c.configPath
	if path == "" {
		path = filepath.Join(dir, ConfigFileName)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigInvalid("cannot serialize").Wrap(err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Validate checks the configuration for semantic errors.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Forms))
	for _, f := range c.Forms {
		if f.Name == "" {
			return errors.ConfigInvalid("form without a name")
		}
		if seen[f.Name] {
			return errors.DuplicateForm(f.Name)
		}
		seen[f.Name] = true

		if len(f.Fields) == 0 {
			return errors.ConfigInvalid("form " + f.Name + " has no fields")
		}
		fields := make(map[string]bool, len(f.Fields))
		for _, fd := range f.Fields {
			if fd.Name == "" {
				return errors.ConfigInvalid("field without a name in form " + f.Name)
			}
			if fields[fd.Name] {
				return errors.ConfigInvalid("duplicate field " + fd.Name + " in form " + f.Name)
			}
			fields[fd.Name] = true
		}
	}
	return nil
}

// Addr returns the host:port address for the live server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// applyDefaults fills unset fields with defaults.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	for i := range c.Forms {
		if c.Forms[i].SuccessHideMs == 0 {
			c.Forms[i].SuccessHideMs = DefaultSuccessHideMs
		}
		for j := range c.Forms[i].Fields {
			if c.Forms[i].Fields[j].Label == "" {
				c.Forms[i].Fields[j].Label = c.Forms[i].Fields[j].Name
			}
		}
	}
}

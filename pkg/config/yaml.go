package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
// It produces human-readable output with appropriate formatting.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(YAMLIndent())

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// ToYAMLWithHeader serializes the configuration with a header comment.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	yamlBytes, err := c.ToYAML()
	if err != nil {
		return nil, err
	}

	if header == "" {
		return yamlBytes, nil
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if header[len(header)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(yamlBytes)

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes. Unknown keys are
// rejected. Missing keys keep their defaults, so an empty document yields
// the default configuration.
func FromYAML(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := DecodeYAML(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DecodeYAML decodes YAML bytes onto an existing configuration. Fields absent
// from the document keep their current values, which makes it suitable for
// layered loading where later files override earlier ones key by key. Unknown
// keys are rejected; an empty document is a no-op.
func DecodeYAML(data []byte, cfg *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse yaml: %w", err)
	}

	return nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	return &Config{
		Lang:              c.Lang,
		SearchDirs:        slices.Clone(c.SearchDirs),
		ExtraDictionaries: slices.Clone(c.ExtraDictionaries),
		DevComments:       c.DevComments,
		SkipReadme:        c.SkipReadme,
		Ignore:            slices.Clone(c.Ignore),
		Format:            c.Format,
		Plain:             c.Plain,
		Jobs:              c.Jobs,
		FailOnEmpty:       c.FailOnEmpty,
	}
}

// YAMLIndent returns the default YAML indentation.
func YAMLIndent() int {
	return 2
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/artlab/internal/design"
)

const (
	DefaultWidth  = 3840
	DefaultHeight = 2160
	DefaultDPI    = 72.0
	DefaultDir    = "pieces"
)

type Config struct {
	Output  OutputConfig                  `yaml:"output"`
	Designs map[string]map[string]float64 `yaml:"designs"`
}

type OutputConfig struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	DPI     float64 `yaml:"dpi"`
	Dir     string  `yaml:"dir"`
	Workers int     `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			DPI:    DefaultDPI,
			Dir:    DefaultDir,
		},
		Designs: map[string]map[string]float64{},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto unmarshals the file over cfg, keeping cfg's values for any key
// the file leaves out.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Apply pushes the config's parameter overrides for d's slug onto the
// design. Designs without an entry are left untouched.
func (c *Config) Apply(d design.Design) error {
	overrides, ok := c.Designs[d.Slug()]
	if !ok || len(overrides) == 0 {
		return nil
	}

	tun, ok := d.(design.Tunable)
	if !ok {
		return fmt.Errorf("config: design %s takes no parameters", d.Slug())
	}
	for name, value := range overrides {
		if err := tun.SetParam(name, value); err != nil {
			return err
		}
	}
	return nil
}

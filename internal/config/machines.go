package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Machine is a named program and input tape.
type Machine struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	Program     string `mapstructure:"program"`
	Tape        string `mapstructure:"tape"`
	MaxSteps    int    `mapstructure:"max_steps"`
}

// File is the structure of a machines.yaml document.
type File struct {
	Machines []map[string]any `yaml:"machines" json:"machines"`
}

// textKeys must be written as strings; YAML would otherwise turn "0010" into 10.
var textKeys = []string{"program", "tape"}

// LoadMachines reads a definition file (YAML, or JSON by extension) and returns
// its machines in file order. Entries without a name are skipped.
func LoadMachines(path string) ([]Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read machines file: %w", err)
	}
	return ParseMachines(data, strings.ToLower(filepath.Ext(path)) == ".json")
}

// ParseMachines decodes a definition document.
func ParseMachines(data []byte, isJSON bool) ([]Machine, error) {
	var f File
	if isJSON {
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse machines json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse machines yaml: %w", err)
		}
	}

	machines := make([]Machine, 0, len(f.Machines))
	for i, raw := range f.Machines {
		m, err := decodeMachine(raw)
		if err != nil {
			return nil, fmt.Errorf("machine %d: %w", i, err)
		}
		if m.Name == "" {
			continue
		}
		machines = append(machines, m)
	}
	return machines, nil
}

func decodeMachine(raw map[string]any) (Machine, error) {
	for _, key := range textKeys {
		if v, ok := raw[key]; ok {
			if _, isString := v.(string); !isString {
				return Machine{}, fmt.Errorf("%s must be a quoted string, got %T", key, v)
			}
		}
	}

	var m Machine
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &m,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Machine{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Machine{}, err
	}
	if m.MaxSteps < 0 {
		return Machine{}, fmt.Errorf("max_steps must not be negative, got %d", m.MaxSteps)
	}
	return m, nil
}

// Find returns the machine called name.
func Find(machines []Machine, name string) (Machine, bool) {
	for _, m := range machines {
		if m.Name == name {
			return m, true
		}
	}
	return Machine{}, false
}

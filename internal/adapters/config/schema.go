package config

import (
	"strconv"
	"strings"
)

// SettingsFile represents the structure of the attune.yaml settings file.
type SettingsFile struct {
	Root                 string    `yaml:"root"`
	Enabled              *FlexBool `yaml:"enabled"`
	EnablePackageRestore FlexBool  `yaml:"enablePackageRestore"`
	DebounceWindow       string    `yaml:"debounceWindow"`
	RestoreCommand       []string  `yaml:"restoreCommand"`
}

// FlexBool is a boolean that tolerates the loose spellings build tooling
// tends to emit ("True", "1", "on"). Anything unrecognized parses as false
// rather than failing the whole settings file.
type FlexBool bool

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *FlexBool) UnmarshalYAML(unmarshal func(any) error) error {
	var raw bool
	if err := unmarshal(&raw); err == nil {
		*b = FlexBool(raw)
		return nil
	}

	var s string
	if err := unmarshal(&s); err != nil {
		*b = false
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "yes":
		*b = true
		return nil
	}

	parsed, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		*b = false
		return nil
	}
	*b = FlexBool(parsed)
	return nil
}

// Bool returns the plain boolean value.
func (b FlexBool) Bool() bool {
	return bool(b)
}

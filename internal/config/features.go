// Package config holds the feature toggles a resolver is created with.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Features are fixed before parsing starts and never change during a parse.
// The resolver keeps its own copy.
type Features struct {
	// EnhancedForLoop enables the DMN 1.2 for-loop grammar (ranges and
	// multiple iteration contexts). The resolver only carries it for the
	// grammar's benefit.
	EnhancedForLoop bool `toml:"enhanced-for-loop"`
	// WeekdayField makes date and date-and-time scopes define `weekday`.
	WeekdayField bool `toml:"weekday"`
}

// Default returns the DMN 1.2 defaults: both features on.
func Default() Features {
	return Features{EnhancedForLoop: true, WeekdayField: true}
}

type file struct {
	Features Features `toml:"features"`
}

// Decode parses a TOML document with a [features] table. Keys that are not
// present keep their Default value; unknown keys are rejected.
func Decode(data []byte) (Features, error) {
	cfg := file{Features: Default()}
	meta, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
	if err != nil {
		return Features{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Features{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg.Features, nil
}

// Load reads features from a TOML file.
func Load(path string) (Features, error) {
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return Features{}, err
	}
	f, err := Decode(data)
	if err != nil {
		return Features{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func (f Features) String() string {
	return fmt.Sprintf("enhanced-for-loop=%t weekday=%t", f.EnhancedForLoop, f.WeekdayField)
}

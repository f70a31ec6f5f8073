// Package packages reads sensor packages: a workout code plus its ordered readings.
package packages

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ErrNoPackages is returned when a package file holds no packages.
var ErrNoPackages = errors.New("no packages found")

// Package is one raw sensor reading set.
type Package struct {
	Code   string    `toml:"code"`
	Values []float64 `toml:"values"`
}

type file struct {
	Packages []Package `toml:"package"`
}

// Default returns the built-in sample packages.
func Default() []Package {
	return []Package{
		{Code: "SWM", Values: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Values: []float64{15000, 1, 75}},
		{Code: "WLK", Values: []float64{9000, 1, 75, 180}},
	}
}

// Load decodes packages from a TOML file with [[package]] tables.
func Load(path string) ([]Package, error) {
	var f file
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode %s: unknown keys %v", path, undecoded)
	}
	if len(f.Packages) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoPackages)
	}
	return f.Packages, nil
}

// LoadOrDefault reads path, or returns the sample packages when path is empty.
func LoadOrDefault(path string) ([]Package, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

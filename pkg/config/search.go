/*
Copyright 2026 The CourseMatch Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Search parameter defaults.
const (
	// DefaultBeta bounds the initial price draw to [1, 1+DefaultBeta].
	DefaultBeta = 4.0

	// DefaultMaxIterations caps the search loop. The underlying demand
	// computation is exhaustive and each iteration can be expensive, so the
	// cap is deliberately modest.
	DefaultMaxIterations = 100
)

// DefaultDeltas is the default set of gradient step sizes.
var DefaultDeltas = []float64{0.5}

// SearchSpec holds the tuning parameters for the tabu price search.
type SearchSpec struct {
	// Beta bounds the initial price draw: prices start uniform in [1, 1+Beta].
	Beta float64 `mapstructure:"beta" yaml:"beta"`

	// Deltas are the gradient step sizes tried when generating neighbors.
	Deltas []float64 `mapstructure:"deltas" yaml:"deltas"`

	// MaxIterations caps the number of search iterations.
	MaxIterations int `mapstructure:"maxIterations" yaml:"maxIterations"`

	// Parallel fans the per-student best-bundle search out across
	// goroutines.
	Parallel bool `mapstructure:"parallel" yaml:"parallel"`

	// Seed seeds the initial price draw. Runs with equal seeds and equal
	// inputs are identical.
	Seed int64 `mapstructure:"seed" yaml:"seed"`
}

// DefaultSearchSpec returns a spec with every parameter at its default.
func DefaultSearchSpec() SearchSpec {
	return SearchSpec{
		Beta:          DefaultBeta,
		Deltas:        append([]float64(nil), DefaultDeltas...),
		MaxIterations: DefaultMaxIterations,
	}
}

// Validate checks for invalid parameter values.
func (s *SearchSpec) Validate() error {
	if s.Beta <= 0 {
		return fmt.Errorf("beta must be > 0, got %g", s.Beta)
	}
	if len(s.Deltas) == 0 {
		return fmt.Errorf("at least one delta step size is required")
	}
	for _, d := range s.Deltas {
		if d <= 0 {
			return fmt.Errorf("delta step sizes must be > 0, got %g", d)
		}
	}
	if s.MaxIterations <= 0 {
		return fmt.Errorf("maxIterations must be > 0, got %d", s.MaxIterations)
	}
	return nil
}

// LoadSearchSpec reads a search spec from the given config file. Missing
// fields take their defaults; the loaded spec is validated before being
// returned.
func LoadSearchSpec(path string) (SearchSpec, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("beta", DefaultBeta)
	v.SetDefault("deltas", DefaultDeltas)
	v.SetDefault("maxIterations", DefaultMaxIterations)

	if err := v.ReadInConfig(); err != nil {
		return SearchSpec{}, fmt.Errorf("reading search config %q: %w", path, err)
	}

	var spec SearchSpec
	if err := v.Unmarshal(&spec); err != nil {
		return SearchSpec{}, fmt.Errorf("parsing search config %q: %w", path, err)
	}
	if err := spec.Validate(); err != nil {
		return SearchSpec{}, fmt.Errorf("invalid search config %q: %w", path, err)
	}
	return spec, nil
}

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
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coursematch/coursematch/pkg/core"
)

// InstanceSpec is the on-disk form of a course-allocation instance.
type InstanceSpec struct {
	// Valuations maps each student to their per-item values.
	Valuations map[string]map[string]float64 `yaml:"valuations"`

	// AgentCapacity is the uniform bundle-size limit applied to every
	// student without an explicit override.
	AgentCapacity int `yaml:"agentCapacity"`

	// AgentCapacities overrides AgentCapacity per student.
	AgentCapacities map[string]int `yaml:"agentCapacities,omitempty"`

	// ItemCapacities is the number of seats per item. Items omitted here
	// default to a single seat.
	ItemCapacities map[string]int `yaml:"itemCapacities,omitempty"`
}

// Validate checks for invalid instance values.
func (s *InstanceSpec) Validate() error {
	if len(s.Valuations) == 0 {
		return fmt.Errorf("valuations must name at least one student")
	}
	if s.AgentCapacity < 0 {
		return fmt.Errorf("agentCapacity must be >= 0, got %d", s.AgentCapacity)
	}
	for student, capacity := range s.AgentCapacities {
		if capacity < 0 {
			return fmt.Errorf("capacity for student %q must be >= 0, got %d", student, capacity)
		}
		if _, ok := s.Valuations[student]; !ok {
			return fmt.Errorf("capacity override for unknown student %q", student)
		}
	}
	for item, seats := range s.ItemCapacities {
		if seats < 0 {
			return fmt.Errorf("seats for item %q must be >= 0, got %d", item, seats)
		}
	}
	return nil
}

// ToInstance materializes the spec as a core.ValuationInstance.
func (s *InstanceSpec) ToInstance() (*core.ValuationInstance, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	capacities := make(map[string]int, len(s.Valuations))
	for student := range s.Valuations {
		capacities[student] = s.AgentCapacity
	}
	for student, capacity := range s.AgentCapacities {
		capacities[student] = capacity
	}
	return core.NewValuationInstance(s.Valuations, capacities, s.ItemCapacities)
}

// LoadInstanceSpec reads and validates an instance spec from a YAML file.
func LoadInstanceSpec(path string) (*InstanceSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading instance file %q: %w", path, err)
	}
	var spec InstanceSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing instance file %q: %w", path, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid instance file %q: %w", path, err)
	}
	return &spec, nil
}

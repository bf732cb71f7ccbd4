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

// Command coursematch runs the tabu price search over a course-allocation
// instance and prints the resulting allocation.
//
// Usage:
//
//	coursematch -instance instance.yaml [-config search.yaml] [-budgets budgets.yaml] [-v 1]
//
// The instance file holds per-student valuations and capacities; the
// optional config file tunes the search (beta, deltas, maxIterations,
// parallel, seed). Budgets default to 1 per student when no budgets file is
// given. The result is written to stdout as YAML.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/coursematch/coursematch/internal/logging"
	"github.com/coursematch/coursematch/internal/tabu"
	"github.com/coursematch/coursematch/pkg/config"
	"github.com/coursematch/coursematch/pkg/core"
)

type output struct {
	Allocation    map[string][]string `yaml:"allocation"`
	Prices        map[string]float64  `yaml:"prices"`
	ClearingError float64             `yaml:"clearingError"`
	Iterations    int                 `yaml:"iterations"`
}

func main() {
	instancePath := flag.String("instance", "", "path to the instance YAML file (required)")
	configPath := flag.String("config", "", "path to the search config YAML file (optional)")
	budgetsPath := flag.String("budgets", "", "path to a student->budget YAML file (optional, default 1 per student)")
	verbosity := flag.Int("v", logging.INFO, "log verbosity (0=info, 1=debug, 2=trace)")
	flag.Parse()

	if *instancePath == "" {
		fmt.Fprintln(os.Stderr, "usage: coursematch -instance instance.yaml [-config search.yaml] [-budgets budgets.yaml]")
		os.Exit(2)
	}
	if err := run(*instancePath, *configPath, *budgetsPath, *verbosity); err != nil {
		fmt.Fprintln(os.Stderr, "coursematch:", err)
		os.Exit(1)
	}
}

func run(instancePath, configPath, budgetsPath string, verbosity int) error {
	log := logging.NewLogger(verbosity)

	instanceSpec, err := config.LoadInstanceSpec(instancePath)
	if err != nil {
		return err
	}
	inst, err := instanceSpec.ToInstance()
	if err != nil {
		return err
	}

	searchSpec := config.DefaultSearchSpec()
	if configPath != "" {
		if searchSpec, err = config.LoadSearchSpec(configPath); err != nil {
			return err
		}
	}

	budgets, err := loadBudgets(budgetsPath, inst)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := tabu.Solve(ctx, inst, budgets, searchSpec, log)
	if err != nil {
		return err
	}

	out := output{
		Allocation:    make(map[string][]string, len(result.Allocation)),
		Prices:        result.Prices,
		ClearingError: result.ClearingError,
		Iterations:    result.Iterations,
	}
	for student, bundle := range result.Allocation {
		out.Allocation[student] = bundle
	}
	encoded, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	_, err = os.Stdout.Write(encoded)
	return err
}

// loadBudgets reads a student->budget YAML map, or gives every student a
// unit budget when no path is set.
func loadBudgets(path string, inst core.CapacitatedInstance) (core.Budgets, error) {
	budgets := make(core.Budgets, len(inst.Agents()))
	if path == "" {
		for _, student := range inst.Agents() {
			budgets[student] = 1
		}
		return budgets, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading budgets file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &budgets); err != nil {
		return nil, fmt.Errorf("parsing budgets file %q: %w", path, err)
	}
	for _, student := range inst.Agents() {
		if _, ok := budgets[student]; !ok {
			return nil, fmt.Errorf("budgets file %q is missing student %q", path, student)
		}
	}
	return budgets, nil
}

// Package config holds the on-disk specifications consumed by the module:
// tabu search tuning parameters and course-allocation instance files.
//
// Search parameters load through viper and instance files through plain
// YAML; both carry Validate methods and are rejected, not repaired, when
// malformed.
package config

// Package config provides configuration structures and utilities for revcheck.
// It defines the target page, the scenario parameters (slider range and
// target, textbox value, CPT code list), browser settings, and report
// generation preferences, along with an optional YAML override file.
package config

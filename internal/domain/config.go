package domain

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultCasePattern is where case files are looked for when the config
// does not say otherwise.
const DefaultCasePattern = "testdata/issues/**/*.yaml"

// ProjectConfig holds project-level configuration loaded from .issuecheck.yaml.
type ProjectConfig struct {
	Cases         []string `yaml:"cases"          json:"cases,omitempty"`
	Exclude       []string `yaml:"exclude"        json:"exclude,omitempty"`
	RecordHistory bool     `yaml:"record_history" json:"record_history,omitempty"`
	MinPassRate   int      `yaml:"min_pass_rate"  json:"min_pass_rate,omitempty"`
}

// DefaultConfig returns the config used when no .issuecheck.yaml exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{Cases: []string{DefaultCasePattern}}
}

// CasePatterns returns the configured case patterns, or the default.
func (c ProjectConfig) CasePatterns() []string {
	if len(c.Cases) == 0 {
		return []string{DefaultCasePattern}
	}
	return c.Cases
}

// IsExcluded reports whether a slash-separated relative path matches an
// exclude pattern.
func (c ProjectConfig) IsExcluded(rel string) bool {
	for _, p := range c.Exclude {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	// 1. case patterns must be relative, well-formed globs
	for i, p := range c.Cases {
		if err := validatePattern(p); err != nil {
			return fmt.Errorf("cases[%d]: %w", i, err)
		}
	}

	// 2. same for excludes
	for i, p := range c.Exclude {
		if err := validatePattern(p); err != nil {
			return fmt.Errorf("exclude[%d]: %w", i, err)
		}
	}

	// 3. min_pass_rate is a percentage
	if c.MinPassRate < 0 || c.MinPassRate > 100 {
		return fmt.Errorf("min_pass_rate = %d (must be between 0 and 100)", c.MinPassRate)
	}

	return nil
}

func validatePattern(p string) error {
	if strings.TrimSpace(p) == "" {
		return fmt.Errorf("pattern must not be empty")
	}
	if !NewFilePath(p).IsRelative() {
		return fmt.Errorf("pattern %q must be relative to the project root", p)
	}
	if !doublestar.ValidatePattern(p) {
		return fmt.Errorf("pattern %q is not a valid glob", p)
	}
	return nil
}

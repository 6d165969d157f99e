package domain

import (
	"fmt"
	"strings"
)

// Config holds project-level configuration loaded from .validgen.yaml.
type Config struct {
	// OutputSuffix is appended (before .go) to the source file's base
	// name to form the generated file name.
	OutputSuffix string `yaml:"output_suffix" json:"output_suffix,omitempty"`

	// ValidateTag and ModifyTag name the struct tag keys the extractor
	// reads the two annotation namespaces from.
	ValidateTag string `yaml:"validate_tag" json:"validate_tag,omitempty"`
	ModifyTag   string `yaml:"modify_tag"   json:"modify_tag,omitempty"`

	// ExcludeDirs lists directory names the scanner skips in addition
	// to the built-in set.
	ExcludeDirs []string `yaml:"exclude_dirs" json:"exclude_dirs,omitempty"`

	// StampCommit controls whether generated headers carry the current
	// commit hash.
	StampCommit bool `yaml:"stamp_commit" json:"stamp_commit,omitempty"`
}

// DefaultConfig returns the configuration used when no .validgen.yaml
// exists.
func DefaultConfig() Config {
	return Config{
		OutputSuffix: "_valid.gen",
		ValidateTag:  "validate",
		ModifyTag:    "modify",
		StampCommit:  true,
	}
}

// Validate checks the raw user config for values that would produce
// broken output.
func (c Config) Validate() error {
	if c.OutputSuffix != "" {
		if strings.HasSuffix(c.OutputSuffix, ".go") {
			return fmt.Errorf("output_suffix %q must not include the .go extension", c.OutputSuffix)
		}
		if !strings.HasSuffix(c.OutputSuffix, ".gen") && !strings.Contains(c.OutputSuffix, "gen") {
			return fmt.Errorf("output_suffix %q must mark files as generated (include %q)", c.OutputSuffix, "gen")
		}
	}
	if c.ValidateTag != "" && c.ValidateTag == c.ModifyTag {
		return fmt.Errorf("validate_tag and modify_tag must be distinct, both are %q", c.ValidateTag)
	}
	return nil
}

// OutputFor maps a source file name to its generated file name.
func (c Config) OutputFor(source string) string {
	base := strings.TrimSuffix(source, ".go")
	return base + c.OutputSuffix + ".go"
}

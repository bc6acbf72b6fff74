// Package usage provides the help banner, with text from embedded or external yaml files
package usage

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
	"melato.org/command"
)

const (
	bold  = "\x1B[01m"
	reset = "\x1B[00m"
)

// Banner is the usage text printed for --help and after configuration errors.
type Banner struct {
	command.Usage `yaml:",inline"`
	Name          string `yaml:"name,omitempty"`
	Version       string `yaml:"version,omitempty"`
	License       string `yaml:"license,omitempty"`
}

// Apply copies the non-empty fields of u to the banner.
func (t *Banner) Apply(u *Banner) {
	if u.Short != "" {
		t.Short = u.Short
	}
	if u.Use != "" {
		t.Use = u.Use
	}
	if u.Long != "" {
		t.Long = u.Long
	}
	if len(u.Examples) > 0 {
		t.Examples = u.Examples
	}
	if u.Name != "" {
		t.Name = u.Name
	}
	if u.Version != "" {
		t.Version = u.Version
	}
	if u.License != "" {
		t.License = u.License
	}
}

// ApplyYaml parses yaml usage data and applies it to the banner.
func (t *Banner) ApplyYaml(data []byte) error {
	var u Banner
	err := yaml.Unmarshal(data, &u)
	if err != nil {
		return err
	}
	t.Apply(&u)
	return nil
}

// ApplyEnv looks for a file specified in an environment variable,
// reads this file, if it exists, and calls ApplyYaml with its content.
// Returns true if it found usage data without errors.
// This way you can make changes to the usage text and see how it looks without recompiling.
// It prints any errors to stderr.
func (t *Banner) ApplyEnv(envVar string) bool {
	file, env := os.LookupEnv(envVar)
	if !env {
		return false
	}
	if _, err := os.Stat(file); err != nil {
		return false
	}
	data, err := os.ReadFile(file)
	if err == nil {
		err = t.ApplyYaml(data)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	return true
}

// Write prints the banner.  If color is true, the usage line is printed in bold.
func (t *Banner) Write(w io.Writer, color bool) {
	if t.Short != "" {
		fmt.Fprintf(w, "%s - %s\n\n", t.Name, t.Short)
	}
	use := strings.TrimSpace(t.Name + " " + t.Use)
	if color {
		use = bold + use + reset
	}
	fmt.Fprintf(w, "Usage:\n    %s\n\n", use)
	if t.Long != "" {
		fmt.Fprintf(w, "%s\n\n", strings.TrimSpace(t.Long))
	}
	if len(t.Examples) > 0 {
		fmt.Fprintln(w, "Examples:")
		for _, example := range t.Examples {
			fmt.Fprintf(w, "    %s %s\n", t.Name, example)
		}
		fmt.Fprintln(w)
	}
	var parts []string
	if t.Version != "" {
		parts = append(parts, "Version: "+t.Version)
	}
	if t.License != "" {
		parts = append(parts, t.License+" License")
	}
	if len(parts) > 0 {
		fmt.Fprintln(w, strings.Join(parts, ", "))
	}
}

package genpass

import (
	"fmt"
	"strconv"
)

// DefaultLength is the password length used when no argument is given.
const DefaultLength = 16

// Config is the parsed command line.
type Config struct {
	Length int
}

// Build creates a Config from the program arguments.
// args[0] is the program name and is ignored.
// args[1], if present, is the password length.  Any further arguments are ignored.
func Build(args []string) (*Config, error) {
	config := &Config{Length: DefaultLength}
	if len(args) < 2 {
		return config, nil
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, &Error{Kind: ConfigError, Err: fmt.Errorf("invalid length %q: %w", args[1], err)}
	}
	if n < 0 {
		return nil, &Error{Kind: ConfigError, Err: fmt.Errorf("invalid length %q: must not be negative", args[1])}
	}
	config.Length = n
	return config, nil
}

// WantsHelp reports whether -h or --help appears anywhere in the arguments.
func WantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

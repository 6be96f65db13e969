package toolchain

import (
	"fmt"

	"github.com/google/shlex"
)

// SplitFlags splits a shell-quoted flag string from the config file into
// individual arguments.
func SplitFlags(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, fmt.Errorf("splitting flags %q: %w", s, err)
	}
	return args, nil
}

// JoinFlags concatenates flag groups, splitting each one.
func JoinFlags(groups ...string) ([]string, error) {
	var all []string
	for _, g := range groups {
		args, err := SplitFlags(g)
		if err != nil {
			return nil, err
		}
		all = append(all, args...)
	}
	return all, nil
}

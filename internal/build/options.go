package build

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Tokens recognized on the command line. They are presence-based and may
// appear in any order.
const (
	TokenHot        = "hot"
	TokenRun        = "run"
	TokenPackage    = "package"
	TokenDistribute = "distribute"
)

// ValidTokens lists every recognized token.
var ValidTokens = []string{TokenHot, TokenRun, TokenPackage, TokenDistribute}

// Options selects what a build does. It is constructed once and not
// modified afterwards; a plan carries its own copy.
type Options struct {
	Version     string
	Target      string
	ReleasePath string

	// HotReload rebuilds only the game library, leaving the driver alone.
	HotReload bool
	// Run launches the driver after a successful full build.
	Run bool
	// Package is reserved for producing a distributable archive. No archive
	// format is defined yet; a packaging build skips the asset link and
	// reports that packaging is not implemented.
	Package bool
	// Distribute is accepted and ignored.
	Distribute bool
}

// ParseTokens sets the boolean options named by tokens. Unknown tokens are
// an error.
func ParseTokens(tokens []string) (Options, error) {
	var opts Options
	for _, tok := range tokens {
		switch strings.ToLower(tok) {
		case TokenHot:
			opts.HotReload = true
		case TokenRun:
			opts.Run = true
		case TokenPackage:
			opts.Package = true
		case TokenDistribute:
			opts.Distribute = true
		default:
			return Options{}, fmt.Errorf("unknown build token %q (valid: %s)", tok, strings.Join(ValidTokens, ", "))
		}
	}
	return opts, nil
}

// NormalizeVersion validates a release identifier as semver, tolerating a
// leading "v", and returns its canonical form.
func NormalizeVersion(version string) (string, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return "", fmt.Errorf("invalid release version %q: %w", version, err)
	}
	return v.String(), nil
}

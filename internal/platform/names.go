package platform

import (
	"path/filepath"
	"strings"
)

// Naming rules strip every known suffix before adding the OS one, so
// applying a rule twice yields the same result as applying it once.

func executableName(windows bool, path string) string {
	dir, base := filepath.Dir(path), filepath.Base(path)
	for {
		trimmed := trimExt(base, ".exe", ".out")
		if trimmed == base {
			break
		}
		base = trimmed
	}
	if windows {
		return filepath.Join(dir, base+".exe")
	}
	return filepath.Join(dir, base)
}

func sharedLibraryName(windows bool, path string) string {
	dir, base := filepath.Dir(path), filepath.Base(path)
	base = trimLibrary(base, ".dll", ".so")
	if windows {
		return filepath.Join(dir, base+".dll")
	}
	return filepath.Join(dir, "lib"+base+".so")
}

func staticLibraryName(windows bool, path string) string {
	dir, base := filepath.Dir(path), filepath.Base(path)
	base = trimLibrary(base, ".lib", ".a")
	if windows {
		return filepath.Join(dir, base+".lib")
	}
	return filepath.Join(dir, "lib"+base+".a")
}

// trimLibrary removes windows and unix library suffixes until none is left.
// A "lib" prefix goes only together with a unix suffix.
func trimLibrary(base, winExt, unixExt string) string {
	for {
		switch {
		case hasExt(base, winExt):
			base = strings.TrimSuffix(base, winExt)
		case strings.HasPrefix(base, "lib") && hasExt(base[len("lib"):], unixExt):
			base = strings.TrimSuffix(base[len("lib"):], unixExt)
		case hasExt(base, unixExt):
			base = strings.TrimSuffix(base, unixExt)
		default:
			return base
		}
	}
}

// trimExt removes one of exts from base, never leaving it empty.
func trimExt(base string, exts ...string) string {
	for _, ext := range exts {
		if hasExt(base, ext) {
			return strings.TrimSuffix(base, ext)
		}
	}
	return base
}

func hasExt(base, ext string) bool {
	return len(base) > len(ext) && strings.HasSuffix(base, ext)
}

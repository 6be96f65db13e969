package platform

import (
	"path/filepath"
	"testing"
)

func TestExecutableName(t *testing.T) {
	tests := []struct {
		os   string
		in   string
		want string
	}{
		{Windows, "bin/odingame", "bin/odingame.exe"},
		{Windows, "bin/odingame.exe", "bin/odingame.exe"},
		{Windows, "bin/odingame.out", "bin/odingame.exe"},
		{Linux, "bin/odingame", "bin/odingame"},
		{Linux, "bin/odingame.exe", "bin/odingame"},
		{Linux, "odingame.out", "odingame"},
		{Linux, "game.exe.exe", "game"},
		{Windows, "game.out.exe", "game.exe"},
	}
	for _, tt := range tests {
		p := mustPolicy(t, tt.os)
		if got := p.ExecutableName(filepath.FromSlash(tt.in)); got != filepath.FromSlash(tt.want) {
			t.Errorf("%s ExecutableName(%q) = %q, want %q", tt.os, tt.in, got, tt.want)
		}
	}
}

func TestSharedLibraryName(t *testing.T) {
	tests := []struct {
		os   string
		in   string
		want string
	}{
		{Windows, "bin/game_code", "bin/game_code.dll"},
		{Windows, "bin/game_code.dll", "bin/game_code.dll"},
		{Windows, "bin/libgame_code.so", "bin/game_code.dll"},
		{Linux, "bin/game_code", "bin/libgame_code.so"},
		{Linux, "bin/libgame_code.so", "bin/libgame_code.so"},
		{Linux, "bin/game_code.dll", "bin/libgame_code.so"},
		{Linux, "bin/game_code.so", "bin/libgame_code.so"},
		{Linux, "x.so.so", "libx.so"},
		{Linux, "libx.so.dll", "libx.so"},
		{Windows, "x.so.so", "x.dll"},
		{Windows, "x.dll.dll", "x.dll"},
	}
	for _, tt := range tests {
		p := mustPolicy(t, tt.os)
		if got := p.SharedLibraryName(filepath.FromSlash(tt.in)); got != filepath.FromSlash(tt.want) {
			t.Errorf("%s SharedLibraryName(%q) = %q, want %q", tt.os, tt.in, got, tt.want)
		}
	}
}

func TestStaticLibraryName(t *testing.T) {
	tests := []struct {
		os   string
		in   string
		want string
	}{
		{Windows, "lib/cgltf", "lib/cgltf.lib"},
		{Windows, "lib/libcgltf.a", "lib/cgltf.lib"},
		{Linux, "lib/cgltf.lib", "lib/libcgltf.a"},
		{Linux, "lib/libcgltf.a", "lib/libcgltf.a"},
	}
	for _, tt := range tests {
		p := mustPolicy(t, tt.os)
		if got := p.StaticLibraryName(filepath.FromSlash(tt.in)); got != filepath.FromSlash(tt.want) {
			t.Errorf("%s StaticLibraryName(%q) = %q, want %q", tt.os, tt.in, got, tt.want)
		}
	}
}

func TestNamingIsIdempotent(t *testing.T) {
	inputs := []string{
		"odingame", "odingame.exe", "odingame.out", "bin/game_code", "bin/game_code.dll",
		"libgame_code.so", "game_code.so", "libfoo", "lib", "libcgltf.a", "cgltf.lib", "x.a",
		"game.exe.exe", "game.out.exe", "x.so.so", "x.dll.dll", "libx.so.so", "x.so.dll",
		"x.a.a", "libx.a.lib", "x.lib.lib", "lib.so", "lib.so.so", ".exe",
	}
	for _, osName := range []string{Windows, Linux} {
		p := mustPolicy(t, osName)
		rules := map[string]func(string) string{
			"executable": p.ExecutableName,
			"shared":     p.SharedLibraryName,
			"static":     p.StaticLibraryName,
		}
		for ruleName, rule := range rules {
			for _, in := range inputs {
				once := rule(in)
				twice := rule(once)
				if once != twice {
					t.Errorf("%s %s rule not idempotent for %q: %q then %q", osName, ruleName, in, once, twice)
				}
			}
		}
	}
}

func mustPolicy(t *testing.T, osName string) Policy {
	t.Helper()
	p, err := ForTarget(osName + "-x86_64")
	if err != nil {
		t.Fatal(err)
	}
	return p
}

package build

import "testing"

func TestParseTokens(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   Options
	}{
		{"none", nil, Options{}},
		{"hot only", []string{"hot"}, Options{HotReload: true}},
		{"run and hot any order", []string{"run", "hot"}, Options{HotReload: true, Run: true}},
		{"package", []string{"package"}, Options{Package: true}},
		{"distribute", []string{"distribute"}, Options{Distribute: true}},
		{"repeated", []string{"run", "run"}, Options{Run: true}},
		{"case insensitive", []string{"HOT"}, Options{HotReload: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTokens(tt.tokens)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseTokens(%v) = %+v, want %+v", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestParseTokens_Unknown(t *testing.T) {
	if _, err := ParseTokens([]string{"hot", "fast"}); err == nil {
		t.Error("expected error for unknown token")
	}
}

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"1.2.3", "1.2.3", false},
		{"v1.2.3", "1.2.3", false},
		{"0.0.0-dev", "0.0.0-dev", false},
		{"1.2", "1.2.0", false},
		{"not-a-version", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeVersion(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NormalizeVersion(%q) expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeVersion(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

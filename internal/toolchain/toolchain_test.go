package toolchain

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/odingame/forge/internal/runner"
)

func TestCompilerRoot_TrimsOutput(t *testing.T) {
	f := runner.NewFake().Respond("odin", runner.Output{Stdout: "C:\\odin\\\r\n"})

	root, err := NewCompiler("").Root(context.Background(), f)
	if err != nil {
		t.Fatalf("Root failed: %v", err)
	}
	if root != `C:\odin\` {
		t.Errorf("Root = %q", root)
	}
	if got := f.Lines(); len(got) != 1 || got[0] != "odin root" {
		t.Errorf("commands = %v", got)
	}
}

func TestCompilerRoot_Failure(t *testing.T) {
	f := runner.NewFake().Respond("odin", runner.Output{ExitCode: 1, Stdout: "odin: unknown command"})
	if _, err := NewCompiler("odin").Root(context.Background(), f); err == nil {
		t.Fatal("expected error")
	}
}

func TestCompilerVersion(t *testing.T) {
	f := runner.NewFake().Respond("odin", runner.Output{Stdout: "odin version dev-2024-05:ab12cd\nextra\n"})
	v, err := NewCompiler("").Version(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	if v != "odin version dev-2024-05:ab12cd" {
		t.Errorf("Version = %q", v)
	}
}

func TestBuildCommands(t *testing.T) {
	c := NewCompiler("odin")
	flags := []string{"-debug", "-o:none"}

	lib := c.BuildLibrary("src/game", flags, "bin/libgame_code.so")
	wantLib := []string{"build", "src/game", "-debug", "-o:none", "-build-mode:dynamic", "-out:bin/libgame_code.so"}
	if diff := cmp.Diff(wantLib, lib.Args); diff != "" {
		t.Errorf("BuildLibrary args mismatch (-want +got):\n%s", diff)
	}

	exe := c.BuildExecutable("src/driver", flags, "bin/odingame")
	wantExe := []string{"build", "src/driver", "-debug", "-o:none", "-out:bin/odingame"}
	if diff := cmp.Diff(wantExe, exe.Args); diff != "" {
		t.Errorf("BuildExecutable args mismatch (-want +got):\n%s", diff)
	}

	// The shared flag slice must not be aliased between commands.
	if len(flags) != 2 {
		t.Errorf("flags mutated: %v", flags)
	}
}

func TestJoinFlags(t *testing.T) {
	got, err := JoinFlags("-debug -o:none", "", `-define:TITLE="My Game"`)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"-debug", "-o:none", "-define:TITLE=My Game"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JoinFlags mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitFlags_Unterminated(t *testing.T) {
	if _, err := SplitFlags(`-define:X="open`); err == nil {
		t.Error("expected error for unterminated quote")
	}
}

func TestNativeCommands(t *testing.T) {
	tests := []struct {
		cmd  runner.Command
		want string
	}{
		{Clone("https://example.com/cgltf.git", "", "lib/cgltf/src"), "git clone --depth 1 https://example.com/cgltf.git lib/cgltf/src"},
		{Clone("https://example.com/cgltf.git", "v1.14", "lib/cgltf/src"), "git clone --depth 1 --branch v1.14 https://example.com/cgltf.git lib/cgltf/src"},
		{CMakeConfigure("src", "src/build", []string{"-DBUILD_SHARED_LIBS=ON"}), "cmake -S src -B src/build -DBUILD_SHARED_LIBS=ON"},
		{CMakeBuild("src/build"), "cmake --build src/build --config Release"},
		{NewShaderCompiler("").Compile("shaders/base.vert", "vert.spv"), "glslc shaders/base.vert -o vert.spv"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

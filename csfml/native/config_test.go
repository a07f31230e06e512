package native

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
lib_dir: /opt/csfml/lib
strict: true
libraries:
  graphics: libcsfml-graphics.so.2.6
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.LibDir != "/opt/csfml/lib" {
		t.Errorf("LibDir = %q", cfg.LibDir)
	}
	if !cfg.Strict {
		t.Error("Strict not set")
	}
	if got := cfg.Libraries["graphics"]; got != "libcsfml-graphics.so.2.6" {
		t.Errorf("Libraries[graphics] = %q", got)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "lib_dir: [unclosed"},
		{"unknown module", "libraries:\n  network: libcsfml-network.so\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			var e *gerrors.Error
			if !errors.As(err, &e) {
				t.Fatalf("expected *errors.Error, got %v", err)
			}
			if e.Phase != gerrors.PhaseConfig {
				t.Errorf("Phase = %s, want %s", e.Phase, gerrors.PhaseConfig)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "csfml.yaml")
	if err := os.WriteFile(path, []byte("lib_dir: "+dir+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LibDir != dir {
		t.Errorf("LibDir = %q, want %q", cfg.LibDir, dir)
	}

	_, err = LoadConfig(filepath.Join(dir, "absent.yaml"))
	var e *gerrors.Error
	if !errors.As(err, &e) || e.Kind != gerrors.KindNotFound {
		t.Errorf("missing file: got %v", err)
	}
}

func TestConfig_EnvOverride(t *testing.T) {
	t.Setenv(EnvLibDir, "/from/env")
	c := Config{LibDir: "/from/file"}.withEnv()
	if c.LibDir != "/from/env" {
		t.Errorf("LibDir = %q, want /from/env", c.LibDir)
	}

	t.Setenv(EnvLibDir, "")
	c = Config{LibDir: "/from/file"}.withEnv()
	if c.LibDir != "/from/file" {
		t.Errorf("LibDir = %q, want /from/file", c.LibDir)
	}
}

func TestLibraryNames(t *testing.T) {
	tests := []struct {
		goos   string
		module string
		first  string
	}{
		{"linux", "graphics", "libcsfml-graphics.so"},
		{"freebsd", "audio", "libcsfml-audio.so"},
		{"darwin", "window", "libcsfml-window.dylib"},
		{"windows", "system", "csfml-system-2.dll"},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.module, func(t *testing.T) {
			names := LibraryNames(tt.goos, tt.module)
			if len(names) == 0 || names[0] != tt.first {
				t.Errorf("LibraryNames = %v, want first %q", names, tt.first)
			}
		})
	}
}

func TestCandidates(t *testing.T) {
	dir := t.TempDir()

	c := Config{LibDir: dir}
	for _, p := range c.candidates("audio") {
		if filepath.Dir(p) != dir {
			t.Errorf("candidate %q outside LibDir", p)
		}
	}

	abs := filepath.Join(dir, "custom-audio.so")
	c = Config{LibDir: "/ignored", Libraries: map[string]string{"audio": abs}}
	if got := c.candidates("audio"); !reflect.DeepEqual(got, []string{abs}) {
		t.Errorf("absolute override: %v", got)
	}

	c = Config{LibDir: dir, Libraries: map[string]string{"audio": "custom-audio.so"}}
	if got := c.candidates("audio"); !reflect.DeepEqual(got, []string{abs}) {
		t.Errorf("relative override: %v", got)
	}
}

func TestCheckCallback(t *testing.T) {
	tests := []struct {
		name string
		fn   any
		kind gerrors.Kind
	}{
		{"point count", csfml.ShapePointCountFunc(func(uintptr) uintptr { return 0 }), ""},
		{"stream data", csfml.StreamGetDataFunc(nil), ""},
		{"struct result", csfml.ShapePointFunc(nil), gerrors.KindUnsupported},
		{"struct argument", csfml.StreamSeekFunc(nil), gerrors.KindUnsupported},
		{"two results", func() (int, int) { return 0, 0 }, gerrors.KindUnsupported},
		{"not a function", 42, gerrors.KindInvalidInput},
		{"nil", nil, gerrors.KindInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkCallback(tt.fn)
			if tt.kind == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var e *gerrors.Error
			if !errors.As(err, &e) || e.Kind != tt.kind {
				t.Fatalf("got %v, want kind %s", err, tt.kind)
			}
		})
	}
}

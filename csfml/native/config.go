package native

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	gerrors "github.com/wippyai/gosfml/errors"
)

// EnvLibDir overrides Config.LibDir when set.
const EnvLibDir = "GOSFML_LIB_DIR"

// Modules lists the CSFML libraries in load order.
var Modules = []string{"system", "window", "graphics", "audio"}

// Config holds configuration for the native backend
type Config struct {
	// LibDir is searched exclusively when set. Otherwise the working
	// directory, the executable's directory and the system loader are tried.
	LibDir string `yaml:"lib_dir"`

	// Libraries overrides the file name per module ("graphics" ->
	// "libcsfml-graphics.so.2.6"). Absolute paths are used as is.
	Libraries map[string]string `yaml:"libraries"`

	// Strict makes Open fail when any symbol is unresolved.
	Strict bool `yaml:"strict"`

	// Logger receives load diagnostics. Nil means no logging.
	Logger *zap.Logger `yaml:"-"`
}

// ParseConfig decodes a YAML configuration.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, gerrors.ParseFailed("native backend config", err)
	}
	for mod := range cfg.Libraries {
		if !isModule(mod) {
			return nil, gerrors.New(gerrors.PhaseConfig, gerrors.KindInvalidData).
				Detail("unknown module %q in libraries", mod).
				Value(mod).
				Build()
		}
	}
	return &cfg, nil
}

// LoadConfig reads and decodes a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gerrors.New(gerrors.PhaseConfig, gerrors.KindNotFound).
			Detail("read %s", path).
			Cause(err).
			Build()
	}
	return ParseConfig(data)
}

// withEnv returns a copy of cfg with environment overrides applied.
func (c Config) withEnv() Config {
	if dir := os.Getenv(EnvLibDir); dir != "" {
		c.LibDir = dir
	}
	return c
}

func isModule(name string) bool {
	for _, m := range Modules {
		if m == name {
			return true
		}
	}
	return false
}

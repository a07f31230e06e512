package native

import (
	"os"
	"path/filepath"
	"runtime"
)

// LibraryNames returns the file names tried for a CSFML module on goos,
// most specific first.
func LibraryNames(goos, module string) []string {
	base := "csfml-" + module
	switch goos {
	case "darwin", "ios":
		return []string{
			"lib" + base + ".dylib",
			"lib" + base + ".2.6.dylib",
			"lib" + base + ".2.5.dylib",
		}
	case "windows":
		return []string{base + "-2.dll", base + ".dll"}
	default:
		return []string{
			"lib" + base + ".so",
			"lib" + base + ".so.2.6",
			"lib" + base + ".so.2.5",
		}
	}
}

// candidates returns the paths tried for module, in order. Bare names at
// the end are left to the system loader.
func (c *Config) candidates(module string) []string {
	names := LibraryNames(runtime.GOOS, module)
	if override, ok := c.Libraries[module]; ok && override != "" {
		if filepath.IsAbs(override) {
			return []string{override}
		}
		names = []string{override}
	}

	if c.LibDir != "" {
		out := make([]string, 0, len(names))
		for _, n := range names {
			out = append(out, filepath.Join(c.LibDir, n))
		}
		return out
	}

	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		dirs = append(dirs, execDir, filepath.Join(execDir, "..", "lib"))
		if runtime.GOOS == "darwin" {
			dirs = append(dirs, filepath.Join(execDir, "..", "Frameworks"))
		}
	}

	var found, bare []string
	for _, n := range names {
		for _, d := range dirs {
			p := filepath.Join(d, n)
			if _, err := os.Stat(p); err == nil {
				found = append(found, p)
			}
		}
		bare = append(bare, n)
	}
	return append(found, bare...)
}

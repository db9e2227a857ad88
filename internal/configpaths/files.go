// Package configpaths locates fwgen configuration files.
package configpaths

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvConfig names the environment variable holding an explicit config file.
const EnvConfig = "FWGEN_CONFIG"

// baseNames are probed, in order, in every searched directory.
var baseNames = []string{"fwgen", "config"}

// Candidates lists config files per loader, highest priority first.
type Candidates struct {
	JSON []string
	YAML []string
	TOML []string
}

func (c *Candidates) add(path string) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		c.YAML = append(c.YAML, path)
	case ".toml":
		c.TOML = append(c.TOML, path)
	default:
		c.JSON = append(c.JSON, path)
	}
}

// DefaultConfigDir returns <user config dir>/fwgen.
func DefaultConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "fwgen"), nil
}

// EnsureDir creates the parent directory of filePath.
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

// Search returns the config candidates. An explicit userPath comes first and
// is routed by extension (unknown extensions are read as JSON); then the
// working directory, then the user config directory.
func Search(userPath string) Candidates {
	var c Candidates
	if userPath != "" {
		c.add(userPath)
	}

	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if dir, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	for _, dir := range dirs {
		for _, base := range baseNames {
			for _, ext := range []string{".json", ".yaml", ".yml", ".toml"} {
				c.add(filepath.Join(dir, base+ext))
			}
		}
	}
	return c
}

// UserConfig returns the file given with --config in args, or the value of
// FWGEN_CONFIG. kong has not parsed the command line yet when this runs.
func UserConfig(args []string) string {
	for i, a := range args {
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv(EnvConfig)
}

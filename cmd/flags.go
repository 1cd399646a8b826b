package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
)

// configEnv overrides the default config path. It may hold several paths
// separated by the OS list separator.
const configEnv = "SITEKEYS_CONFIG"

// fileFlags holds the config files a command reads.
type fileFlags struct {
	paths []string
}

func (f *fileFlags) register(fs *pflag.FlagSet) {
	fs.StringSliceVarP(&f.paths, "file", "f", nil, "Config file to load (repeatable; later files override earlier ones)")
}

// resolve returns the flagged paths, or the defaults when none were given.
func (f *fileFlags) resolve() []string {
	if len(f.paths) > 0 {
		return f.paths
	}
	return defaultConfigPaths()
}

func defaultConfigPaths() []string {
	if env := os.Getenv(configEnv); env != "" {
		return filepath.SplitList(env)
	}
	return []string{defaultConfigPath()}
}

func defaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "sitekeys", "sitekeys.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "sitekeys.toml"
	}
	return filepath.Join(home, ".config", "sitekeys", "sitekeys.toml")
}

// abbreviatePath replaces the home directory prefix with ~.
func abbreviatePath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + strings.TrimPrefix(path, home)
	}
	return path
}

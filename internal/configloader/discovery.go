package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigPaths represents discovered configuration file paths.
type ConfigPaths struct {
	// System is the system-wide config path (e.g., /etc/prosechunk/config.yaml).
	System string

	// User is the user-level config path (e.g., ~/.config/prosechunk/config.yaml).
	User string

	// Project is the project-level config path (e.g., ./.prosechunk.yml).
	Project string

	// Explicit is a config path provided via --config flag.
	Explicit string

	// Spellcheck is a detected cargo-spellcheck config file path.
	Spellcheck string
}

// prosechunkConfigFiles are the config file names we search for, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var prosechunkConfigFiles = []string{
	".prosechunk.yml",
	".prosechunk.yaml",
	"prosechunk.yml",
	"prosechunk.yaml",
}

// spellcheckConfigFiles are the cargo-spellcheck config files we detect for
// migration. The `.config/` variant is where cargo-spellcheck keeps its
// per-project config by default.
//
//nolint:gochecknoglobals // Read-only lookup table.
var spellcheckConfigFiles = []string{
	filepath.Join(".config", "spellcheck.toml"),
	".spellcheck.toml",
	"spellcheck.toml",
}

// vcsRootMarkers are directories that indicate a VCS root.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds configuration files in standard locations.
// It searches for:
//   - System config at /etc/prosechunk/config.{yaml,yml}
//   - User config at $XDG_CONFIG_HOME/prosechunk/config.{yaml,yml}
//   - Project config by searching upward from workDir for .prosechunk.{yaml,yml}
//   - cargo-spellcheck config for migration purposes
//
// Missing files are represented as empty strings (not errors).
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
	}

	paths := &ConfigPaths{}

	// Find system config
	paths.System = findSystemConfig()

	// Find user config
	paths.User = findUserConfig()

	// Find project config (searches upward)
	projectConfig, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}
	paths.Project = projectConfig

	// Find cargo-spellcheck config (for migration)
	paths.Spellcheck = findSpellcheckConfig(workDir)

	return paths, nil
}

// findSystemConfig returns the path to the system-wide config file, if it exists.
func findSystemConfig() string {
	if runtime.GOOS == "windows" {
		// On Windows, use ProgramData
		programData := os.Getenv("ProgramData")
		if programData == "" {
			programData = `C:\ProgramData`
		}
		return findConfigInDir(filepath.Join(programData, "prosechunk"))
	}

	// On Unix-like systems, use /etc
	return findConfigInDir("/etc/prosechunk")
}

// findUserConfig returns the path to the user-level config file, if it exists.
func findUserConfig() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}

	return findConfigInDir(filepath.Join(configHome, "prosechunk"))
}

// findConfigInDir looks for config files in the given directory.
// Returns the path to the first found file, or empty string if none.
func findConfigInDir(dir string) string {
	for _, name := range []string{"config.yaml", "config.yml"} {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// FindProjectConfig searches upward from startDir for a project config file.
// Returns the path to the first config file found, or empty string if none.
// Stops at filesystem boundaries, VCS roots, or when reaching root.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	// Resolve to absolute path
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		// If we can't get home dir, we'll just skip the home boundary check.
		homeDir = ""
	}

	currentDir := absDir
	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		// Check for prosechunk config files in current directory
		for _, name := range prosechunkConfigFiles {
			path := filepath.Join(currentDir, name)
			if fileExists(path) {
				return path, nil
			}
		}

		// Check if we've hit a VCS root (optimization: stop here)
		if isVCSRoot(currentDir) {
			return "", nil
		}

		// Check if we've reached home directory boundary
		if homeDir != "" && currentDir == homeDir {
			return "", nil
		}

		// Move to parent directory
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root
			return "", nil
		}
		currentDir = parentDir
	}
}

// findSpellcheckConfig looks for a cargo-spellcheck config file in the given
// directory. Returns the path to the first found file, or empty string if none.
func findSpellcheckConfig(dir string) string {
	for _, name := range spellcheckConfigFiles {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// FindSpellcheckConfig is the exported version that searches for a
// cargo-spellcheck config.
func FindSpellcheckConfig(dir string) string {
	return findSpellcheckConfig(dir)
}

// isVCSRoot returns true if the directory contains a VCS root marker.
func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		path := filepath.Join(dir, marker)
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsTOMLConfig returns true if the path is a TOML config file.
func IsTOMLConfig(path string) bool {
	return filepath.Ext(path) == ".toml"
}

// IsYAMLConfig returns true if the path is a YAML config file.
func IsYAMLConfig(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yaml" || ext == ".yml"
}

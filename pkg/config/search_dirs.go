package config

import (
	"os"
	"runtime"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// SearchDirs is the ordered list of directories scanned for dictionary
// files. Explicit entries keep the order they were written in; the running
// OS's conventional dictionary directories always follow them. Duplicates
// are kept, and missing directories are the consumer's problem.
type SearchDirs []string

// osDirs caches the running OS's conventional dictionary directories.
//
//nolint:gochecknoglobals // Computed once, read-only afterwards
var (
	osDirs     SearchDirs
	osDirsOnce sync.Once
)

// DefaultSearchDirs returns the conventional dictionary directories of the
// running OS. The returned slice is a copy.
func DefaultSearchDirs() SearchDirs {
	osDirsOnce.Do(func() {
		osDirs = SearchDirsFor(runtime.GOOS)
	})
	return slices.Clone(osDirs)
}

// NewSearchDirs returns a SearchDirs holding the explicit entries, in order,
// followed by the OS defaults.
func NewSearchDirs(explicit []string) SearchDirs {
	return append(SearchDirs(slices.Clone(explicit)), DefaultSearchDirs()...)
}

// SearchDirsFor returns the conventional dictionary directories for the
// given GOOS. Unrecognized systems have none.
func SearchDirsFor(goos string) SearchDirs {
	switch goos {
	case "linux":
		return SearchDirs{
			"/usr/share/myspell/",
			"/usr/share/hunspell/",
			"/usr/share/myspell/dicts/",
		}
	case "darwin":
		dirs := SearchDirs{}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			dirs = append(dirs, home+"/Library/Spelling/")
		}
		return append(dirs, "/Library/Spelling/")
	default:
		return nil
	}
}

// UnmarshalYAML decodes an explicit directory list and appends the OS
// defaults after it. Writing search_dirs in a config file therefore extends
// the lookup order rather than replacing it.
func (d *SearchDirs) UnmarshalYAML(value *yaml.Node) error {
	var explicit []string
	if err := value.Decode(&explicit); err != nil {
		return err
	}

	*d = NewSearchDirs(explicit)
	return nil
}

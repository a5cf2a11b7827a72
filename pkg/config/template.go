package config

// StarterTemplate returns the commented configuration template written by
// "prosechunk config init".
func StarterTemplate() []byte {
	return []byte(`# prosechunk configuration
# See: https://github.com/yaklabco/prosechunk

# Dictionary language handed to downstream checkers ("ll" or "ll_CC")
lang: en_US

# Directories scanned for dictionary files. Explicit entries come first;
# the OS defaults are always appended after them.
# search_dirs:
#   - /opt/dictionaries/

# Additional dictionary files, resolved against search_dirs when relative
# extra_dictionaries:
#   - project-words.dic

# Extract developer comments from source files
dev_comments: true

# Leave README files out of discovery
skip_readme: false

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"
#   - "target/**"
`)
}

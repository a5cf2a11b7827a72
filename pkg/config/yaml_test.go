package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/prosechunk/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies slices", func(t *testing.T) {
		original := &config.Config{
			SearchDirs:        config.SearchDirs{"/a/", "/b/"},
			ExtraDictionaries: []string{"words.dic"},
			Ignore:            []string{"vendor/**"},
		}

		clone := original.Clone()
		require.NotNil(t, clone)

		clone.SearchDirs[0] = "changed"
		clone.ExtraDictionaries[0] = "changed"
		clone.Ignore[0] = "changed"

		assert.Equal(t, "/a/", original.SearchDirs[0])
		assert.Equal(t, "words.dic", original.ExtraDictionaries[0])
		assert.Equal(t, "vendor/**", original.Ignore[0])
	})

	t.Run("preserves all fields", func(t *testing.T) {
		original := &config.Config{
			Lang:              "de_DE",
			SearchDirs:        config.SearchDirs{"/dicts/"},
			ExtraDictionaries: []string{"extra.dic"},
			DevComments:       true,
			SkipReadme:        true,
			Ignore:            []string{"*.bak"},
			Format:            config.FormatJSON,
			Plain:             true,
			Jobs:              4,
			FailOnEmpty:       true,
		}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, original, clone)
		assert.NotSame(t, original, clone)
	})
}

func TestConfigToYAML(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var cfg *config.Config
		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("basic config serializes", func(t *testing.T) {
		cfg := &config.Config{
			Lang:       "en_GB",
			SkipReadme: true,
		}

		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Contains(t, string(data), "lang: en_GB")
		assert.Contains(t, string(data), "skip_readme: true")
	})

	t.Run("CLI-only fields stay out", func(t *testing.T) {
		cfg := &config.Config{Lang: "en_US", Jobs: 8, Plain: true}

		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.NotContains(t, string(data), "jobs")
		assert.NotContains(t, string(data), "plain")
	})
}

func TestConfigToYAMLWithHeader(t *testing.T) {
	cfg := &config.Config{Lang: "en_US"}

	data, err := cfg.ToYAMLWithHeader("# generated")
	require.NoError(t, err)

	text := string(data)
	assert.True(t, len(text) > 0 && text[0] == '#')
	assert.Contains(t, text, "# generated\n\n")
	assert.Contains(t, text, "lang: en_US")
}

func TestFromYAML(t *testing.T) {
	t.Run("parses valid YAML", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte(`
lang: fr_FR
dev_comments: false
skip_readme: true
`))
		require.NoError(t, err)
		assert.Equal(t, "fr_FR", cfg.Lang)
		assert.False(t, cfg.DevComments)
		assert.True(t, cfg.SkipReadme)
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte(`lang: en_GB`))
		require.NoError(t, err)
		assert.Equal(t, "en_GB", cfg.Lang)
		assert.True(t, cfg.DevComments)
		assert.Equal(t, config.DefaultSearchDirs(), cfg.SearchDirs)
	})

	t.Run("empty document yields defaults", func(t *testing.T) {
		cfg, err := config.FromYAML(nil)
		require.NoError(t, err)
		assert.Equal(t, "en_US", cfg.Lang)
		assert.True(t, cfg.DevComments)
	})

	t.Run("explicit search_dirs extend the defaults", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte("search_dirs:\n  - /custom/\n"))
		require.NoError(t, err)

		expected := append(config.SearchDirs{"/custom/"}, config.DefaultSearchDirs()...)
		assert.Equal(t, expected, cfg.SearchDirs)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := config.FromYAML([]byte("languge: en_US\n"))
		assert.Error(t, err)
	})

	t.Run("malformed YAML errors", func(t *testing.T) {
		_, err := config.FromYAML([]byte("lang: [unclosed"))
		assert.Error(t, err)
	})
}

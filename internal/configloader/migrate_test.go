package configloader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConvertSpellcheckConfig_Full(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	configContent := `
dev_comments = false
skip_readme = true

[hunspell]
lang = "de_DE"
search_dirs = ["/opt/dicts", "dictionaries"]
extra_dictionaries = ["project-words.dic"]
`
	configPath := filepath.Join(tmpDir, "spellcheck.toml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	result, err := ConvertSpellcheckConfig(configPath)
	if err != nil {
		t.Fatalf("ConvertSpellcheckConfig() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("result.Config is nil")
	}

	if result.Config.DevComments {
		t.Error("expected dev_comments false")
	}
	if !result.Config.SkipReadme {
		t.Error("expected skip_readme true")
	}
	if result.Config.Lang != "de_DE" {
		t.Errorf("expected lang %q, got %q", "de_DE", result.Config.Lang)
	}

	// Only explicit search dirs go into the converted config; OS defaults
	// are appended when the written file is read back.
	wantDirs := []string{"/opt/dicts", "dictionaries"}
	if len(result.Config.SearchDirs) != len(wantDirs) {
		t.Fatalf("expected %d search dirs, got %v", len(wantDirs), result.Config.SearchDirs)
	}
	for i, want := range wantDirs {
		if result.Config.SearchDirs[i] != want {
			t.Errorf("search_dirs[%d] = %q, want %q", i, result.Config.SearchDirs[i], want)
		}
	}

	if len(result.Config.ExtraDictionaries) != 1 || result.Config.ExtraDictionaries[0] != "project-words.dic" {
		t.Errorf("expected extra_dictionaries [project-words.dic], got %v", result.Config.ExtraDictionaries)
	}

	if len(result.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", result.Warnings)
	}
}

func TestConvertSpellcheckConfig_Minimal(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "spellcheck.toml")
	if err := os.WriteFile(configPath, []byte(""), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	result, err := ConvertSpellcheckConfig(configPath)
	if err != nil {
		t.Fatalf("ConvertSpellcheckConfig() error = %v", err)
	}

	// Defaults survive an empty file
	if result.Config.Lang != "en_US" {
		t.Errorf("expected default lang en_US, got %q", result.Config.Lang)
	}
	if !result.Config.DevComments {
		t.Error("expected dev_comments true by default")
	}
	if len(result.Config.SearchDirs) != 0 {
		t.Errorf("expected no explicit search dirs, got %v", result.Config.SearchDirs)
	}
}

func TestConvertSpellcheckConfig_WarnsUnmapped(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	configContent := `
[hunspell]
lang = "en_US"
use_builtin = true
skip_os_lookups = false

[hunspell.quirks]
allow_concatenation = true
allow_dashes = true

[languagetool]
url = "http://127.0.0.1:8010/"
`
	configPath := filepath.Join(tmpDir, "spellcheck.toml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	result, err := ConvertSpellcheckConfig(configPath)
	if err != nil {
		t.Fatalf("ConvertSpellcheckConfig() error = %v", err)
	}

	if result.Config.Lang != "en_US" {
		t.Errorf("expected lang en_US, got %q", result.Config.Lang)
	}

	wantMentions := []string{"languagetool", "quirks", "use_builtin", "skip_os_lookups"}
	for _, mention := range wantMentions {
		found := false
		for _, w := range result.Warnings {
			if strings.Contains(w, mention) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected a warning mentioning %q, got %v", mention, result.Warnings)
		}
	}

	// The quirks table has two leaves but should warn once
	quirksCount := 0
	for _, w := range result.Warnings {
		if strings.Contains(w, "quirks") {
			quirksCount++
		}
	}
	if quirksCount != 1 {
		t.Errorf("expected exactly 1 quirks warning, got %d in %v", quirksCount, result.Warnings)
	}
}

func TestConvertSpellcheckConfig_UnknownKey(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "spellcheck.toml")
	if err := os.WriteFile(configPath, []byte("bogus = 1\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	result, err := ConvertSpellcheckConfig(configPath)
	if err != nil {
		t.Fatalf("ConvertSpellcheckConfig() error = %v", err)
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "unknown key") && strings.Contains(w, "bogus") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected unknown key warning, got %v", result.Warnings)
	}
}

func TestConvertSpellcheckConfig_NotTOML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "spellcheck.yml")
	if err := os.WriteFile(configPath, []byte("lang: en_US\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := ConvertSpellcheckConfig(configPath)
	if err == nil {
		t.Fatal("expected error for non-TOML config file")
	}
}

func TestConvertSpellcheckConfig_InvalidTOML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "spellcheck.toml")
	if err := os.WriteFile(configPath, []byte("[hunspell\nlang ="), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := ConvertSpellcheckConfig(configPath)
	if err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestCanMigrate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected bool
	}{
		{"spellcheck.toml", true},
		{filepath.Join(".config", "spellcheck.toml"), true},
		{".spellcheck.toml", true},
		{".prosechunk.yml", false},
		{"config.yaml", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			result := CanMigrate(tt.path)
			if result != tt.expected {
				t.Errorf("CanMigrate(%q) = %v, want %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestGetMigrationWarning(t *testing.T) {
	t.Parallel()

	if got := GetMigrationWarning("spellcheck.toml"); got != "" {
		t.Errorf("expected no warning for a TOML file, got %q", got)
	}
	if got := GetMigrationWarning(".prosechunk.yml"); !strings.Contains(got, "already in prosechunk YAML format") {
		t.Errorf("expected already-migrated warning for a YAML file, got %q", got)
	}
	if got := GetMigrationWarning("settings.ini"); !strings.Contains(got, "not a cargo-spellcheck TOML file") {
		t.Errorf("expected unsupported-format warning, got %q", got)
	}
}

func TestDetectConfigFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected string
	}{
		{"spellcheck.toml", "toml"},
		{".prosechunk.yml", "yaml"},
		{".prosechunk.yaml", "yaml"},
		{"config.txt", "unknown"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			result := DetectConfigFormat(tt.path)
			if result != tt.expected {
				t.Errorf("DetectConfigFormat(%q) = %q, want %q", tt.path, result, tt.expected)
			}
		})
	}
}

func TestGenerateMigrationHeader(t *testing.T) {
	t.Parallel()

	header := GenerateMigrationHeader(filepath.Join("some", "dir", "spellcheck.toml"))
	if !strings.Contains(header, "spellcheck.toml") {
		t.Errorf("expected header to name the source file, got %q", header)
	}
	if !strings.Contains(header, "prosechunk") {
		t.Errorf("expected header to mention prosechunk, got %q", header)
	}
}

package persona

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/calliope-ai/calliope/internal/config"
)

func writePresets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write preset fixture: %v", err)
	}
	return path
}

func TestLoadPresets(t *testing.T) {
	path := writePresets(t, `{
		"Professional": {"creativity": 0.3, "professionalism": 0.9, "friendliness": 0.6, "sarcasm": 0.0, "verbosity": 0.7},
		"Sarcastic": {"creativity": 0.7, "professionalism": 0.2, "friendliness": 0.4, "sarcasm": 0.9, "verbosity": 0.6}
	}`)

	presets, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets() error = %v", err)
	}

	names := presets.Names()
	if len(names) != 2 || names[0] != "Professional" || names[1] != "Sarcastic" {
		t.Errorf("unexpected preset names: %v", names)
	}

	profile, ok := presets.Get("Sarcastic")
	if !ok {
		t.Fatal("Sarcastic preset missing")
	}
	if profile.Name != "Sarcastic" || profile.Sarcasm != 0.9 {
		t.Errorf("unexpected profile: %+v", profile)
	}
	if err := profile.Validate(); err != nil {
		t.Errorf("loaded profile failed validation: %v", err)
	}
}

func TestLoadPresetsMissingTraitDefaultsToNeutral(t *testing.T) {
	path := writePresets(t, `{"Partial": {"sarcasm": 0.8}}`)

	presets, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets() error = %v", err)
	}

	profile, _ := presets.Get("Partial")
	if profile.Creativity != NeutralTrait || profile.Verbosity != NeutralTrait {
		t.Errorf("missing traits not neutral: %+v", profile)
	}
	if profile.Sarcasm != 0.8 {
		t.Errorf("explicit trait lost: %+v", profile)
	}
}

func TestLoadPresetsFailsFast(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"trait out of range", `{"Broken": {"creativity": 2.5}}`},
		{"negative trait", `{"Broken": {"sarcasm": -0.2}}`},
		{"malformed json", `{"Broken": `},
		{"empty file", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writePresets(t, tt.content)

			_, err := LoadPresets(path)
			if err == nil {
				t.Fatal("expected a fatal config error")
			}

			var cfgErr *config.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected ConfigError, got %T: %v", err, err)
			}
		})
	}
}

func TestLoadPresetsMissingFile(t *testing.T) {
	_, err := LoadPresets(filepath.Join(t.TempDir(), "nope.json"))

	var cfgErr *config.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected ConfigError for missing file, got %T: %v", err, err)
	}
}

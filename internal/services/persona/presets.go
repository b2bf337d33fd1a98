package persona

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/calliope-ai/calliope/internal/config"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// presetRecord is the on-disk shape of one preset. Pointer fields so that
// absent traits can be distinguished from explicit zeros and defaulted to
// the neutral midpoint.
type presetRecord struct {
	Creativity      *float64 `json:"creativity" validate:"omitempty,min=0,max=1"`
	Professionalism *float64 `json:"professionalism" validate:"omitempty,min=0,max=1"`
	Friendliness    *float64 `json:"friendliness" validate:"omitempty,min=0,max=1"`
	Sarcasm         *float64 `json:"sarcasm" validate:"omitempty,min=0,max=1"`
	Verbosity       *float64 `json:"verbosity" validate:"omitempty,min=0,max=1"`
}

// Presets is the immutable preset table loaded once at startup.
type Presets struct {
	profiles map[string]Profile
	names    []string
}

// LoadPresets reads and validates the preset file. Any malformed entry is a
// fatal ConfigError naming the offending preset; nothing is silently
// defaulted to keep bad trait values out of the session.
func LoadPresets(path string) (*Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &config.ConfigError{Source: "presets", Reason: fmt.Sprintf("read %s", path), Err: err}
	}

	var records map[string]presetRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &config.ConfigError{Source: "presets", Reason: fmt.Sprintf("parse %s", path), Err: err}
	}

	if len(records) == 0 {
		return nil, &config.ConfigError{Source: "presets", Reason: fmt.Sprintf("%s defines no presets", path)}
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	profiles := make(map[string]Profile, len(records))
	names := make([]string, 0, len(records))
	for name, record := range records {
		if name == "" {
			return nil, &config.ConfigError{Source: "presets", Reason: "preset with empty name"}
		}
		if err := validate.Struct(record); err != nil {
			return nil, &config.ConfigError{
				Source: "presets",
				Reason: fmt.Sprintf("preset %q has a trait outside [0,1]", name),
				Err:    err,
			}
		}

		profiles[name] = Profile{
			Name:            name,
			Creativity:      traitOrNeutral(record.Creativity),
			Professionalism: traitOrNeutral(record.Professionalism),
			Friendliness:    traitOrNeutral(record.Friendliness),
			Sarcasm:         traitOrNeutral(record.Sarcasm),
			Verbosity:       traitOrNeutral(record.Verbosity),
		}
		names = append(names, name)
	}
	sort.Strings(names)

	log.Info().Int("count", len(profiles)).Str("path", path).Msg("Loaded personality presets")

	return &Presets{profiles: profiles, names: names}, nil
}

// Get returns the named preset profile.
func (p *Presets) Get(name string) (Profile, bool) {
	profile, ok := p.profiles[name]
	return profile, ok
}

// Names returns the preset names in sorted order.
func (p *Presets) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// All returns every preset keyed by name, in a fresh map.
func (p *Presets) All() map[string]Profile {
	out := make(map[string]Profile, len(p.profiles))
	for name, profile := range p.profiles {
		out[name] = profile
	}
	return out
}

func traitOrNeutral(v *float64) float64 {
	if v == nil {
		return NeutralTrait
	}
	return *v
}

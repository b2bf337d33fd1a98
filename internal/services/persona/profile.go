// Package persona holds the personality profile model and the preset table.
package persona

import "fmt"

// Trait names, also used as JSON keys in the preset file.
const (
	TraitCreativity      = "creativity"
	TraitProfessionalism = "professionalism"
	TraitFriendliness    = "friendliness"
	TraitSarcasm         = "sarcasm"
	TraitVerbosity       = "verbosity"
)

// NeutralTrait is the midpoint used for traits left unspecified.
const NeutralTrait = 0.5

// Profile is a complete set of personality traits on the [0,1] scale.
// Passed by value everywhere; a profile handed to the composer is never
// mutated afterwards.
type Profile struct {
	Name            string  `json:"name,omitempty"`
	Creativity      float64 `json:"creativity"`
	Professionalism float64 `json:"professionalism"`
	Friendliness    float64 `json:"friendliness"`
	Sarcasm         float64 `json:"sarcasm"`
	Verbosity       float64 `json:"verbosity"`
}

// Default returns the out-of-the-box personality used when a turn names no
// preset and no explicit traits.
func Default() Profile {
	return Profile{
		Name:            "Default",
		Creativity:      0.5,
		Professionalism: 0.5,
		Friendliness:    0.5,
		Sarcasm:         0.0,
		Verbosity:       0.5,
	}
}

// Validate rejects any trait outside [0,1].
func (p Profile) Validate() error {
	for _, tv := range p.traits() {
		if tv.value < 0 || tv.value > 1 {
			return fmt.Errorf("trait %q must be between 0.0 and 1.0, got %g", tv.name, tv.value)
		}
	}
	return nil
}

// DominantTrait returns the highest-valued trait and its value. Verbosity
// is excluded: it shapes response length, not character.
func (p Profile) DominantTrait() (string, float64) {
	dominant := TraitCreativity
	value := p.Creativity
	for _, tv := range p.traits() {
		if tv.name == TraitVerbosity {
			continue
		}
		if tv.value > value {
			dominant = tv.name
			value = tv.value
		}
	}
	return dominant, value
}

type traitValue struct {
	name  string
	value float64
}

func (p Profile) traits() []traitValue {
	return []traitValue{
		{TraitCreativity, p.Creativity},
		{TraitProfessionalism, p.Professionalism},
		{TraitFriendliness, p.Friendliness},
		{TraitSarcasm, p.Sarcasm},
		{TraitVerbosity, p.Verbosity},
	}
}

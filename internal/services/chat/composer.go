package chat

import (
	"math"
	"strings"

	"github.com/calliope-ai/calliope/internal/generation"
	"github.com/calliope-ai/calliope/internal/services/conversation"
	"github.com/calliope-ai/calliope/internal/services/persona"
)

// contextWindow caps how much history goes into a payload. The cap is
// applied on every call, never mid-turn.
const contextWindow = 8

// Sampling ranges the trait values interpolate over.
const (
	minTemperature = 0.3
	maxTemperature = 1.0
	minTokens      = 50
	maxTokens      = 200
)

// Compose builds the generation payload for one turn: trait-derived system
// instructions, the capped history, and the new user message last. Pure and
// deterministic; safe to call from tests without any backend.
func Compose(profile persona.Profile, history []conversation.Turn, message string) *generation.Payload {
	if len(history) > contextWindow {
		history = history[len(history)-contextWindow:]
	}

	messages := make([]generation.Message, 0, len(history)+1)
	for _, turn := range history {
		messages = append(messages, generation.Message{Role: turn.Role, Content: turn.Text})
	}
	messages = append(messages, generation.Message{Role: generation.RoleUser, Content: message})

	return &generation.Payload{
		System:   BuildSystemPrompt(profile),
		Messages: messages,
		Options: generation.Options{
			Temperature: float32(minTemperature + profile.Creativity*(maxTemperature-minTemperature)),
			MaxTokens:   minTokens + int(math.Round(profile.Verbosity*float64(maxTokens-minTokens))),
		},
	}
}

// BuildSystemPrompt maps each trait value into a natural-language directive
// band. Band selection is monotonic: a higher trait value never produces a
// weaker directive.
func BuildSystemPrompt(profile persona.Profile) string {
	var traits []string

	if profile.Professionalism > 0.7 {
		traits = append(traits, "highly professional and formal")
	} else if profile.Professionalism < 0.3 {
		traits = append(traits, "casual and informal")
	}

	if profile.Friendliness > 0.7 {
		traits = append(traits, "extremely friendly and warm")
	} else if profile.Friendliness < 0.3 {
		traits = append(traits, "somewhat reserved and direct")
	}

	if profile.Sarcasm > 0.7 {
		traits = append(traits, "quite sarcastic and witty")
	} else if profile.Sarcasm > 0.4 {
		traits = append(traits, "slightly sarcastic")
	}

	if profile.Creativity > 0.7 {
		traits = append(traits, "highly creative and imaginative")
	} else if profile.Creativity < 0.3 {
		traits = append(traits, "factual and straightforward")
	}

	if profile.Verbosity > 0.7 {
		traits = append(traits, "expansive and richly detailed")
	} else if profile.Verbosity < 0.3 {
		traits = append(traits, "brief and to the point")
	}

	if len(traits) == 0 {
		traits = append(traits, "helpful and informative")
	}

	var sb strings.Builder
	sb.WriteString("You are a chatbot with a personality that is ")
	sb.WriteString(strings.Join(traits, ", "))
	sb.WriteString(".\n")
	sb.WriteString(`IMPORTANT INSTRUCTIONS:
- Provide only your final response, DO NOT show your reasoning process
- DO NOT use phrases like "Let me think..." or "Here's my reasoning..."
- DO NOT include any text before or after your actual response
- Respond directly and concisely as your personality would.
Respond appropriately based on your configured personality traits.`)

	return sb.String()
}

// Package fallback produces in-character canned replies when the generation
// backend is unavailable. It never fails.
package fallback

import (
	"hash/fnv"

	"github.com/calliope-ai/calliope/internal/services/persona"
)

// Notice prefixes every fallback reply so the UI can never present one as a
// live model answer.
const Notice = "[offline fallback] "

// dominantThreshold is how strong a trait must be before its themed pool is
// used instead of the default pool.
const dominantThreshold = 0.6

var responsePools = map[string][]string{
	persona.TraitSarcasm: {
		"Oh, wow, another message. I'm absolutely thrilled to be helping you.",
		"Fascinating. You've used yet another of your precious messages on this.",
		"Let me guess - you want a helpful response? How original.",
		"I'd love to help, but I'm too busy contemplating the meaning of your request.",
		"Sure, I'll answer that. Not like I have anything better to do.",
	},
	persona.TraitFriendliness: {
		"I'd be absolutely delighted to help with that!",
		"What a wonderful question! Let me think about how best to assist you.",
		"I'm so glad you asked! Here's what I can tell you about that:",
		"You've come to the right place! I'm happy to help with your question.",
		"That's a great question! Let me share what I know about this topic.",
	},
	persona.TraitProfessionalism: {
		"I will address your inquiry with the utmost professionalism.",
		"Thank you for your question. Based on the available information, I can provide the following response:",
		"I have analyzed your query and prepared the following comprehensive response.",
		"After careful consideration of your question, I've formulated this response:",
		"I appreciate your question. Allow me to provide a detailed and professional answer.",
	},
	persona.TraitCreativity: {
		"Imagine if answers were clouds - I'd give you the fluffiest one! But since they're not, here's my creative take:",
		"If this response were a painting, it would be a masterpiece of helpful information!",
		"Let's approach this from a completely new angle! What if we considered that...",
		"I'm going to answer this in a way nobody has ever answered before!",
		"Prepare for a response that will take you on a journey of imagination and insight!",
	},
}

var defaultPool = []string{
	"I understand your question. Here's what I can tell you about that.",
	"Thanks for your message. Let me help with that.",
	"I've processed your question and here's my response.",
	"That's an interesting question. Here's what I think about it.",
	"Let me address that for you. Here's the information you requested.",
}

// Service selects canned replies. The seed makes selection reproducible;
// tests inject a fixed one.
type Service struct {
	seed uint64
}

func NewService(seed uint64) *Service {
	return &Service{seed: seed}
}

// Respond picks a reply from the pool matching the profile's dominant trait
// and marks it with the fallback notice. Total: always returns text.
func (s *Service) Respond(profile persona.Profile, message string) string {
	pool := defaultPool
	if trait, value := profile.DominantTrait(); value > dominantThreshold {
		if themed, ok := responsePools[trait]; ok {
			pool = themed
		}
	}

	return Notice + pool[s.pick(message, len(pool))]
}

// pick derives a pool index from the seed and the message so the same
// (profile, message, seed) triple always lands on the same reply.
func (s *Service) pick(message string, poolSize int) int {
	h := fnv.New64a()
	h.Write([]byte(message))
	return int((h.Sum64() ^ s.seed) % uint64(poolSize))
}

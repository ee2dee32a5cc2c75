// Package synth turns change facts and session context into a commit
// message: a title chosen by a prioritized rule chain and a deduplicated,
// capped list of summary bullets.
package synth

import (
	"github.com/roivaz/commitdraft/internal/facts"
	"github.com/roivaz/commitdraft/internal/session"
)

const (
	DefaultMaxBullets   = 5
	DefaultPatternLimit = 3
	DefaultThreshold    = 2
)

// Input is everything the synthesizer looks at.
type Input struct {
	Facts    facts.ChangeFacts
	Context  session.Context
	Concepts []string
}

type Options struct {
	// MaxBullets caps the bullet list. Zero or negative means DefaultMaxBullets.
	MaxBullets int
	// PatternLimit caps how many detected patterns become bullets.
	PatternLimit int
	// Similarity defaults to SharedWords{Threshold: DefaultThreshold}.
	Similarity Similarity
	// ExtraRules run after the built-in rules.
	ExtraRules []Rule
}

type Synthesizer struct {
	rules      []Rule
	similarity Similarity
	maxBullets int
}

func New(opts Options) *Synthesizer {
	if opts.MaxBullets <= 0 {
		opts.MaxBullets = DefaultMaxBullets
	}
	if opts.PatternLimit <= 0 {
		opts.PatternLimit = DefaultPatternLimit
	}
	if opts.Similarity == nil {
		opts.Similarity = SharedWords{Threshold: DefaultThreshold}
	}
	rules := defaultRules(opts.PatternLimit)
	rules = append(rules, opts.ExtraRules...)
	return &Synthesizer{rules: rules, similarity: opts.Similarity, maxBullets: opts.MaxBullets}
}

// Synthesize builds the commit message for in. It always returns a non-empty
// title and at least one bullet.
func (s *Synthesizer) Synthesize(in Input) CommitMessage {
	points := s.Points(in)
	bullets := make([]string, 0, len(points))
	for _, p := range points {
		bullets = append(bullets, p.Text)
	}
	return CommitMessage{Title: s.Title(in), Bullets: bullets}
}

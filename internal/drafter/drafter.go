// Package drafter runs the commit message pipeline: segment the diff,
// extract facts, extract concepts from the session context and synthesize
// the message.
package drafter

import (
	"github.com/roivaz/commitdraft/internal/concepts"
	"github.com/roivaz/commitdraft/internal/diff"
	"github.com/roivaz/commitdraft/internal/facts"
	"github.com/roivaz/commitdraft/internal/logging"
	"github.com/roivaz/commitdraft/internal/session"
	"github.com/roivaz/commitdraft/internal/signals"
	"github.com/roivaz/commitdraft/internal/synth"
)

type Config struct {
	SkipGenerated       bool
	MaxBullets          int
	SimilarityThreshold int
	// ExtraSignals are appended to the built-in pattern catalog.
	ExtraSignals signals.Catalog
	// TokenEstimator sizes diffs in analysis stats; nil uses diff.EstimateTokens.
	TokenEstimator func(string) int
	Logger         logging.Logger
}

// Analysis is the structured result of running the extractors over a diff.
type Analysis struct {
	Facts    facts.ChangeFacts    `json:"facts"`
	Stats    diff.Stats           `json:"stats"`
	Skipped  []diff.SkippedFile   `json:"skipped,omitempty"`
	Concepts []string             `json:"concepts,omitempty"`
	Message  *synth.CommitMessage `json:"message,omitempty"`
}

type Drafter struct {
	cfg       Config
	log       logging.Logger
	extractor *facts.Extractor
	synth     *synth.Synthesizer
}

func New(cfg Config) *Drafter {
	log := logging.New(cfg.Logger.Logr()).WithName("drafter")

	threshold := cfg.SimilarityThreshold
	if threshold <= 0 {
		threshold = synth.DefaultThreshold
	}

	return &Drafter{
		cfg:       cfg,
		log:       log,
		extractor: facts.NewExtractor(facts.DefaultPatterns.Extend(cfg.ExtraSignals...)),
		synth: synth.New(synth.Options{
			MaxBullets: cfg.MaxBullets,
			Similarity: synth.SharedWords{Threshold: threshold},
		}),
	}
}

// Draft produces the commit message for diffText and ctx. It never fails; an
// empty diff and empty context still yield a generic message.
func (d *Drafter) Draft(diffText string, ctx session.Context) synth.CommitMessage {
	seg := d.segment(diffText)
	in := synth.Input{
		Facts:    d.extractor.Extract(seg),
		Context:  ctx,
		Concepts: concepts.Extract(ctx.Text()),
	}
	msg := d.synth.Synthesize(in)
	d.log.Debug("draft ready",
		"files", len(in.Facts.FilesModified),
		"functions_added", len(in.Facts.FunctionsAdded),
		"functions_modified", len(in.Facts.FunctionsModified),
		"patterns", len(in.Facts.Patterns),
		"concepts", len(in.Concepts),
		"bullets", len(msg.Bullets),
	)
	return msg
}

// Analyze reports the facts and stats for diffText without synthesizing a
// message.
func (d *Drafter) Analyze(diffText string) Analysis {
	seg := d.segment(diffText)
	stats := diff.ComputeStats(diffText, seg, d.cfg.TokenEstimator)
	d.log.Info("diff prep stats",
		"files_total", stats.FilesTotal,
		"files_filtered", stats.FilesFiltered,
		"lines_added", stats.LinesAdded,
		"lines_removed", stats.LinesRemoved,
		"tokens", stats.Tokens,
	)
	return Analysis{
		Facts:   d.extractor.Extract(seg),
		Stats:   stats,
		Skipped: seg.Skipped,
	}
}

// Report is Analyze plus the concepts and drafted message for ctx.
func (d *Drafter) Report(diffText string, ctx session.Context) Analysis {
	a := d.Analyze(diffText)
	a.Concepts = concepts.Extract(ctx.Text())
	msg := d.synth.Synthesize(synth.Input{Facts: a.Facts, Context: ctx, Concepts: a.Concepts})
	a.Message = &msg
	return a
}

func (d *Drafter) segment(diffText string) diff.Segmented {
	return diff.Segment(diffText, diff.Options{SkipGenerated: d.cfg.SkipGenerated, Logger: d.log})
}
